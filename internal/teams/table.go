package teams

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"kampdata/internal/services"
)

//go:embed team_aliases.yaml
var defaultAliasYAML []byte

// Entry describes one club: the display name plus every spelling that should
// resolve to its code.
type Entry struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

// Table holds the alias table keyed by club code.
type Table struct {
	entries map[string]Entry
	codes   []string
}

type tableDocument struct {
	Teams map[string]Entry `yaml:"teams"`
}

// DefaultTable parses the embedded alias table. The embedded document is
// maintained alongside this package, so a parse failure is a programming
// error and panics.
func DefaultTable() *Table {
	table, err := parseTable(defaultAliasYAML)
	if err != nil {
		panic(fmt.Sprintf("teams: embedded alias table invalid: %v", err))
	}
	return table
}

// LoadTable reads an alias table from a YAML file. An empty path falls back
// to the embedded default.
func LoadTable(path string) (*Table, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultTable(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "teams", "load aliases", "read alias file", err)
	}
	table, err := parseTable(raw)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "teams", "load aliases", "parse alias file", err)
	}
	return table, nil
}

func parseTable(raw []byte) (*Table, error) {
	var doc tableDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if len(doc.Teams) == 0 {
		return nil, fmt.Errorf("alias table defines no teams")
	}
	entries := make(map[string]Entry, len(doc.Teams))
	codes := make([]string, 0, len(doc.Teams))
	for code, entry := range doc.Teams {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			return nil, fmt.Errorf("alias table contains an empty club code")
		}
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("club %s has no display name", code)
		}
		entries[code] = entry
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return &Table{entries: entries, codes: codes}, nil
}

// Codes returns every club code in sorted order.
func (t *Table) Codes() []string {
	out := make([]string, len(t.codes))
	copy(out, t.codes)
	return out
}

// Entry returns the table entry for a code.
func (t *Table) Entry(code string) (Entry, bool) {
	entry, ok := t.entries[strings.ToUpper(strings.TrimSpace(code))]
	return entry, ok
}

// Name returns the display name for a code.
func (t *Table) Name(code string) (string, bool) {
	entry, ok := t.Entry(code)
	return entry.Name, ok
}

// Len reports how many clubs the table defines.
func (t *Table) Len() int {
	return len(t.codes)
}
