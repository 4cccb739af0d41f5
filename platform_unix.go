//go:build !windows

package textenc

import (
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// activeBackend is the production backend for this build: an
// iconv-style lookup over the IANA character-set index, with the
// locale charset taken from the usual environment variables.
var activeBackend backend = unixBackend{}

type unixBackend struct{}

func (unixBackend) localeEncoding(mode FailureMode) *Encoding {
	charset := localeCharset(os.Getenv("LC_ALL"), os.Getenv("LC_CTYPE"), os.Getenv("LANG"))
	if b, ok := localeBases[strings.ToUpper(charset)]; ok {
		return newBuiltin(b, mode)
	}
	if enc, err := (unixBackend{}).encodingByName(charset, mode); err == nil {
		return enc
	}
	// Unknown or unset charset: assume UTF-8, the modern default.
	return newBuiltin(baseUTF8, mode)
}

// localeBases maps charset spellings seen in locale strings straight
// to builtin families. The C and POSIX locales land on Latin-1, the
// nearest single-byte encoding with a total byte-to-rune map.
var localeBases = map[string]base{
	"":               baseLatin1,
	"C":              baseLatin1,
	"POSIX":          baseLatin1,
	"US-ASCII":       baseLatin1,
	"ANSI_X3.4-1968": baseLatin1,
	"UTF-8":          baseUTF8,
	"UTF8":           baseUTF8,
}

// localeCharset extracts the charset from the first set locale
// variable: "en_US.UTF-8@euro" yields "UTF-8".
func localeCharset(vars ...string) string {
	for _, v := range vars {
		if v == "" {
			continue
		}
		if i := strings.IndexByte(v, '.'); i >= 0 {
			v = v[i+1:]
		}
		if i := strings.IndexByte(v, '@'); i >= 0 {
			v = v[:i]
		}
		return v
	}
	return ""
}

func (unixBackend) encodingByName(name string, mode FailureMode) (*Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, &UnknownEncodingError{Name: name}
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = name
	}
	if cm, ok := enc.(*charmap.Charmap); ok {
		return charmapEncoding(canonical, cm, mode), nil
	}
	// The index resolves Unicode names to its own transformers; route
	// them to the builtin families instead so the uniform failure
	// layer applies. Anything else (multi-byte legacy encodings) is
	// unsupported: its transformers cannot honor the failure modes.
	if b, ok := utfBases[canonical]; ok {
		return newBuiltin(b, mode), nil
	}
	return nil, &UnknownEncodingError{Name: name}
}

func (unixBackend) encodingByCodePage(n int, mode FailureMode) (*Encoding, error) {
	return codePageEncoding(n, mode)
}
