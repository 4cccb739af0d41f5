package textenc

import "sync"

// Canonical names of the built-in encodings.
const (
	nameLatin1  = "ISO-8859-1"
	nameUTF8    = "UTF-8"
	nameUTF8BOM = "UTF-8BOM"
	nameUTF16   = "UTF-16"
	nameUTF16LE = "UTF-16LE"
	nameUTF16BE = "UTF-16BE"
	nameUTF32   = "UTF-32"
	nameUTF32LE = "UTF-32LE"
	nameUTF32BE = "UTF-32BE"
)

// base identifies a built-in encoding family independent of the
// failure mode it is configured with.
type base int

const (
	baseLatin1 base = iota
	baseUTF8
	baseUTF8BOM
	baseUTF16
	baseUTF16LE
	baseUTF16BE
	baseUTF32
	baseUTF32LE
	baseUTF32BE
)

// newBuiltin constructs a built-in encoding configured with the given
// failure mode. This is the single construction point shared by the
// table accessors and the resolver.
func newBuiltin(b base, mode FailureMode) *Encoding {
	switch b {
	case baseLatin1:
		return NewEncoding(nameLatin1,
			func() Encoder { return newEncoder(nameLatin1, latin1CharEncoder{}, nil, mode) },
			func() Decoder { return newDecoder(nameLatin1, latin1CharDecoder{}, mode) },
		)
	case baseUTF8:
		return NewEncoding(nameUTF8,
			func() Encoder { return newEncoder(nameUTF8, utf8CharEncoder{}, nil, mode) },
			func() Decoder { return newDecoder(nameUTF8, utf8CharDecoder{}, mode) },
		)
	case baseUTF8BOM:
		return NewEncoding(nameUTF8BOM,
			func() Encoder { return newEncoder(nameUTF8BOM, utf8CharEncoder{}, utf8BOM, mode) },
			func() Decoder { return newDecoder(nameUTF8BOM, &utf8BOMCharDecoder{}, mode) },
		)
	case baseUTF16:
		return NewEncoding(nameUTF16,
			func() Encoder {
				return newEncoder(nameUTF16, utf16CharEncoder{endianBig}, utf16BOMHeader(endianBig), mode)
			},
			func() Decoder { return newDecoder(nameUTF16, newUTF16CharDecoder(endianUnknown, true), mode) },
		)
	case baseUTF16LE:
		return NewEncoding(nameUTF16LE,
			func() Encoder { return newEncoder(nameUTF16LE, utf16CharEncoder{endianLittle}, nil, mode) },
			func() Decoder { return newDecoder(nameUTF16LE, newUTF16CharDecoder(endianLittle, false), mode) },
		)
	case baseUTF16BE:
		return NewEncoding(nameUTF16BE,
			func() Encoder { return newEncoder(nameUTF16BE, utf16CharEncoder{endianBig}, nil, mode) },
			func() Decoder { return newDecoder(nameUTF16BE, newUTF16CharDecoder(endianBig, false), mode) },
		)
	case baseUTF32:
		return NewEncoding(nameUTF32,
			func() Encoder {
				return newEncoder(nameUTF32, utf32CharEncoder{endianBig}, utf32BOMHeader(endianBig), mode)
			},
			func() Decoder { return newDecoder(nameUTF32, newUTF32CharDecoder(endianUnknown, true), mode) },
		)
	case baseUTF32LE:
		return NewEncoding(nameUTF32LE,
			func() Encoder { return newEncoder(nameUTF32LE, utf32CharEncoder{endianLittle}, nil, mode) },
			func() Decoder { return newDecoder(nameUTF32LE, newUTF32CharDecoder(endianLittle, false), mode) },
		)
	case baseUTF32BE:
		return NewEncoding(nameUTF32BE,
			func() Encoder { return newEncoder(nameUTF32BE, utf32CharEncoder{endianBig}, nil, mode) },
			func() Decoder { return newDecoder(nameUTF32BE, newUTF32CharDecoder(endianBig, false), mode) },
		)
	default:
		panic("textenc: unknown builtin encoding")
	}
}

// builtins is the named encoding table: canonical name -> Encoding,
// populated once at package init and read-only afterwards. All entries
// are configured with FailureError; other failure modes are obtained
// through Resolve.
var builtins = map[string]*Encoding{
	nameLatin1:  newBuiltin(baseLatin1, FailureError),
	nameUTF8:    newBuiltin(baseUTF8, FailureError),
	nameUTF8BOM: newBuiltin(baseUTF8BOM, FailureError),
	nameUTF16:   newBuiltin(baseUTF16, FailureError),
	nameUTF16LE: newBuiltin(baseUTF16LE, FailureError),
	nameUTF16BE: newBuiltin(baseUTF16BE, FailureError),
	nameUTF32:   newBuiltin(baseUTF32, FailureError),
	nameUTF32LE: newBuiltin(baseUTF32LE, FailureError),
	nameUTF32BE: newBuiltin(baseUTF32BE, FailureError),
}

// Latin1 returns the ISO-8859-1 encoding. It is always configured with
// FailureError: bytes outside the representable range on encode are a
// hard failure, and the table accessor offers no other mode. Latin-1
// is deliberately not reachable through Resolve.
func Latin1() *Encoding { return builtins[nameLatin1] }

// UTF8 returns the UTF-8 encoding.
func UTF8() *Encoding { return builtins[nameUTF8] }

// UTF8BOM returns the UTF-8 encoding that writes a byte-order mark at
// stream start and strips a leading one on decode. Apart from the
// marker it behaves exactly as UTF8.
func UTF8BOM() *Encoding { return builtins[nameUTF8BOM] }

// UTF16 returns the endian-unmarked UTF-16 encoding: it writes a
// leading byte-order mark on encode and consumes one on decode to pick
// the byte order, defaulting to big-endian when absent.
func UTF16() *Encoding { return builtins[nameUTF16] }

// UTF16LE returns little-endian UTF-16 without a byte-order mark.
func UTF16LE() *Encoding { return builtins[nameUTF16LE] }

// UTF16BE returns big-endian UTF-16 without a byte-order mark.
func UTF16BE() *Encoding { return builtins[nameUTF16BE] }

// UTF32 returns the endian-unmarked UTF-32 encoding, with the same
// byte-order-mark behavior as UTF16.
func UTF32() *Encoding { return builtins[nameUTF32] }

// UTF32LE returns little-endian UTF-32 without a byte-order mark.
func UTF32LE() *Encoding { return builtins[nameUTF32LE] }

// UTF32BE returns big-endian UTF-32 without a byte-order mark.
func UTF32BE() *Encoding { return builtins[nameUTF32BE] }

// The three platform-resolved encodings share one underlying charset
// (the process locale's) and differ only in failure mode. Each is
// computed once, race-safe, on first use.
var (
	localeEncoding = sync.OnceValue(func() *Encoding {
		return activeBackend.localeEncoding(FailureError)
	})
	fileSystemEncoding = sync.OnceValue(func() *Encoding {
		return activeBackend.localeEncoding(FailureSurrogateEscape)
	})
	foreignEncoding = sync.OnceValue(func() *Encoding {
		return activeBackend.localeEncoding(FailureIgnore)
	})
)

// LocaleEncoding returns the process's ambient character-set encoding,
// configured with FailureError.
func LocaleEncoding() *Encoding { return localeEncoding() }

// FileSystemEncoding returns the locale encoding configured with
// FailureSurrogateEscape, so undecodable bytes in path names
// round-trip losslessly.
func FileSystemEncoding() *Encoding { return fileSystemEncoding() }

// ForeignEncoding returns the locale encoding configured with
// FailureIgnore, for best-effort interchange with foreign code.
func ForeignEncoding() *Encoding { return foreignEncoding() }
