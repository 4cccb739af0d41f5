package textenc

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// codePages is the fixed numbered code-page model: every entry is a
// single-byte table that runs under the uniform failure layer.
var codePages = map[int]*charmap.Charmap{
	37:    charmap.CodePage037,
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	855:   charmap.CodePage855,
	858:   charmap.CodePage858,
	860:   charmap.CodePage860,
	862:   charmap.CodePage862,
	863:   charmap.CodePage863,
	865:   charmap.CodePage865,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	20866: charmap.KOI8R,
	21866: charmap.KOI8U,
	28591: charmap.ISO8859_1,
	28592: charmap.ISO8859_2,
	28595: charmap.ISO8859_5,
	28597: charmap.ISO8859_7,
	28599: charmap.ISO8859_9,
	28605: charmap.ISO8859_15,
}

// codePageEncoding resolves a numbered code page from the fixed table.
func codePageEncoding(n int, mode FailureMode) (*Encoding, error) {
	cm, ok := codePages[n]
	if !ok {
		return nil, &UnknownEncodingError{Name: fmt.Sprintf("CP%d", n)}
	}
	return charmapEncoding(fmt.Sprintf("CP%d", n), cm, mode), nil
}
