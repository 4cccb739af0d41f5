// Package aliases resolves encoding names through a user-supplied
// table of alternate spellings. The table maps an alias (say
// "latin-1" or "unicode") to a canonical specification understood by
// textenc.Resolve. It lives in a YAML, TOML, or JSON file, with the
// format picked from the file extension.
//
// An alias table never touches the builtin encoding table; resolving
// through one returns standalone Encoding values, exactly as
// textenc.Resolve does.
package aliases

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/rbaliyan/textenc"
)

// Table is a loaded alias table. It is immutable after Load and safe
// for concurrent use.
type Table struct {
	aliases map[string]string
}

// Option configures loading.
type Option func(*loadOptions)

type loadOptions struct {
	format string
	logger *slog.Logger
}

// WithFormat overrides extension-based format detection. Accepted
// values are "yaml", "toml", and "json".
func WithFormat(format string) Option {
	return func(o *loadOptions) {
		o.format = format
	}
}

// WithLogger sets a logger for load diagnostics. Default is
// slog.Default(). Resolution itself never logs.
func WithLogger(l *slog.Logger) Option {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Load reads an alias table from path. The file holds a flat mapping
// of alias to canonical specification, in the format implied by the
// extension (.yaml/.yml, .toml, .json).
func Load(path string, opts ...Option) (*Table, error) {
	o := loadOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	format := o.format
	if format == "" {
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			format = "yaml"
		case ".toml":
			format = "toml"
		case ".json":
			format = "json"
		default:
			return nil, fmt.Errorf("aliases: cannot detect format of %q", path)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("aliases: read %q: %w", path, err)
	}

	m := make(map[string]string)
	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, &m)
	case "toml":
		err = toml.Unmarshal(data, &m)
	case "json":
		err = json.Unmarshal(data, &m)
	default:
		return nil, fmt.Errorf("aliases: unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("aliases: parse %q: %w", path, err)
	}

	o.logger.Debug("loaded encoding aliases", "path", path, "count", len(m))
	return New(m), nil
}

// New builds a table from an in-memory mapping. The map is copied.
func New(m map[string]string) *Table {
	aliases := make(map[string]string, len(m))
	for k, v := range m {
		aliases[k] = v
	}
	return &Table{aliases: aliases}
}

// Lookup returns the canonical specification for alias, if present.
func (t *Table) Lookup(alias string) (string, bool) {
	canonical, ok := t.aliases[alias]
	return canonical, ok
}

// Resolve resolves name through the table and then through
// textenc.Resolve. A failure-mode suffix on name survives aliasing:
// "latin-1//IGNORE" with an alias "latin-1" -> "ISO-8859-1" resolves
// as "ISO-8859-1//IGNORE". A suffix already present on the alias
// target wins over one on the input.
func (t *Table) Resolve(name string) (*textenc.Encoding, error) {
	baseName := name
	suffix := ""
	if i := strings.Index(name, "//"); i >= 0 {
		baseName, suffix = name[:i], name[i:]
	}
	if canonical, ok := t.aliases[baseName]; ok {
		if strings.Contains(canonical, "//") {
			suffix = ""
		}
		return textenc.Resolve(canonical + suffix)
	}
	return textenc.Resolve(name)
}
