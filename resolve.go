package textenc

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// utfBases maps the canonical spellings the resolver matches directly
// (case-sensitively) to builtin families. Latin-1 is intentionally
// absent: it is reachable only through the table accessor.
var utfBases = map[string]base{
	nameUTF8:    baseUTF8,
	nameUTF16:   baseUTF16,
	nameUTF16LE: baseUTF16LE,
	nameUTF16BE: baseUTF16BE,
	nameUTF32:   baseUTF32,
	nameUTF32LE: baseUTF32LE,
	nameUTF32BE: baseUTF32BE,
}

// suffixModes maps the failure-mode suffix, slash included, to a mode.
var suffixModes = map[string]FailureMode{
	"":            FailureError,
	"//IGNORE":    FailureIgnore,
	"//TRANSLIT":  FailureTransliterate,
	"//SURROGATE": FailureSurrogateEscape,
}

// ParseName splits an encoding specification into its base name and
// failure mode. The grammar is BASE['//'SUFFIX] with SUFFIX one of
// IGNORE, TRANSLIT, SURROGATE; any other suffix makes the whole name
// unrecognized rather than a distinct error.
func ParseName(name string) (string, FailureMode, error) {
	baseName := name
	suffix := ""
	if i := strings.IndexByte(name, '/'); i >= 0 {
		baseName, suffix = name[:i], name[i:]
	}
	mode, ok := suffixModes[suffix]
	if !ok {
		return "", FailureError, &UnknownEncodingError{Name: name}
	}
	return baseName, mode, nil
}

// resolved caches Resolve results. Encoding values are immutable and
// every NewEncoder/NewDecoder call builds a fresh codec, so sharing a
// cached Encoding never shares transcoding state.
var resolved = func() *lru.Cache[string, *Encoding] {
	c, err := lru.New[string, *Encoding](128)
	if err != nil {
		panic(err)
	}
	return c
}()

// Resolve turns an encoding specification such as "UTF-8" or
// "UTF-16LE//IGNORE" into an Encoding. The base is matched
// case-sensitively against the canonical UTF spellings and otherwise
// handed to the platform backend; failures surface an
// UnknownEncodingError carrying the literal name. Resolve never
// registers anything into the builtin table.
func Resolve(name string) (*Encoding, error) {
	if enc, ok := resolved.Get(name); ok {
		return enc, nil
	}
	baseName, mode, err := ParseName(name)
	if err != nil {
		return nil, err
	}

	var enc *Encoding
	if b, ok := utfBases[baseName]; ok {
		enc = newBuiltin(b, mode)
	} else {
		enc, err = activeBackend.encodingByName(baseName, mode)
		if err != nil {
			return nil, &UnknownEncodingError{Name: name}
		}
	}
	resolved.Add(name, enc)
	return enc, nil
}
