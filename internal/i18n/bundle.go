// Package i18n resolves display strings by stable key. Lookups never fail:
// a missing key renders as [[key]] so gaps are visible in the report.
package i18n

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed en.yaml
var defaultStrings []byte

// Bundle is an immutable string table.
type Bundle struct {
	strings map[string]string
}

// Default returns the embedded English bundle.
func Default() *Bundle {
	b, err := parse(defaultStrings)
	if err != nil {
		// en.yaml is embedded at build time.
		panic(fmt.Sprintf("parsing embedded strings: %v", err))
	}

	return b
}

// Load returns the embedded bundle with the strings from path merged over it.
// An empty path returns the embedded bundle unchanged.
func Load(path string) (*Bundle, error) {
	base := Default()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: operator-supplied language file
	if err != nil {
		return nil, fmt.Errorf("reading language file: %w", err)
	}

	overrides, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing language file %s: %w", path, err)
	}

	for k, v := range overrides.strings {
		base.strings[k] = v
	}

	return base, nil
}

func parse(data []byte) (*Bundle, error) {
	table := make(map[string]string)
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, err
	}

	return &Bundle{strings: table}, nil
}

// String returns the text for key, formatted with args when given.
func (b *Bundle) String(key string, args ...any) string {
	text, ok := b.strings[key]
	if !ok {
		return "[[" + key + "]]"
	}

	if len(args) == 0 {
		return text
	}

	return fmt.Sprintf(text, args...)
}

// Has reports whether key is defined.
func (b *Bundle) Has(key string) bool {
	_, ok := b.strings[key]
	return ok
}

// ProbeName returns the display name of a probe.
func (b *Bundle) ProbeName(id string) string {
	return b.String(id + "name")
}

// ProbeInfo returns the one-line description of a probe.
func (b *Bundle) ProbeInfo(id string) string {
	return b.String(id + "info")
}

// CategoryLabel returns the heading for a failure category.
func (b *Bundle) CategoryLabel(category string) string {
	if category == "" {
		return b.String("unknowncategorylabel")
	}

	return b.String(category + "label")
}

// CategorySolution returns the remediation text for a failure category with
// url substituted in.
func (b *Bundle) CategorySolution(category, url string) string {
	key := category + "solution"
	if category == "" {
		key = "unknowncategorysolution"
	}

	if !b.Has(key) {
		return b.String(key)
	}

	if !strings.Contains(b.strings[key], "%") {
		return b.strings[key]
	}

	return b.String(key, url)
}
