//go:build windows

package textenc

import (
	"strconv"
	"strings"
)

// activeBackend is the production backend for this build: a fixed
// code-page model. Names of the form CP<digits> resolve through the
// code-page table; everything else is unknown.
var activeBackend backend = windowsBackend{}

// defaultCodePage stands in for the console/ANSI code page.
const defaultCodePage = 1252

type windowsBackend struct{}

func (windowsBackend) localeEncoding(mode FailureMode) *Encoding {
	enc, err := codePageEncoding(defaultCodePage, mode)
	if err != nil {
		// The default page is always in the table.
		panic(err)
	}
	return enc
}

func (windowsBackend) encodingByName(name string, mode FailureMode) (*Encoding, error) {
	digits, ok := strings.CutPrefix(name, "CP")
	if !ok || digits == "" {
		return nil, &UnknownEncodingError{Name: name}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return nil, &UnknownEncodingError{Name: name}
	}
	enc, err := codePageEncoding(n, mode)
	if err != nil {
		return nil, &UnknownEncodingError{Name: name}
	}
	return enc, nil
}

func (windowsBackend) encodingByCodePage(n int, mode FailureMode) (*Encoding, error) {
	return codePageEncoding(n, mode)
}
