package textenc

// backend is the platform capability the resolver and the
// platform-resolved accessors depend on. Exactly one production
// implementation is linked in per build (see platform_unix.go and
// platform_windows.go); nothing else in the package knows which.
type backend interface {
	// localeEncoding returns the process's ambient character-set
	// encoding configured with the given failure mode.
	localeEncoding(mode FailureMode) *Encoding

	// encodingByName resolves a platform encoding name. The name is
	// passed through exactly as the caller wrote it.
	encodingByName(name string, mode FailureMode) (*Encoding, error)

	// encodingByCodePage resolves a numbered code page. Backends
	// without a code-page model return ErrUnknownEncoding.
	encodingByCodePage(n int, mode FailureMode) (*Encoding, error)
}
