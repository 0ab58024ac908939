package teams

import "strings"

// Resolver maps club names onto codes using a normalized alias comparison.
type Resolver struct {
	table *Table
	// index maps normalized alias/display spellings to club codes. Built
	// once so repeated lookups stay cheap; when two clubs claim the same
	// normalized spelling the lexically smaller code wins, keeping
	// resolution deterministic.
	index map[string]string
}

// NewResolver builds a resolver over the given table. A nil table uses the
// embedded default.
func NewResolver(table *Table) *Resolver {
	if table == nil {
		table = DefaultTable()
	}
	index := make(map[string]string)
	for _, code := range table.codes {
		entry := table.entries[code]
		keys := make([]string, 0, len(entry.Aliases)+1)
		keys = append(keys, Normalize(entry.Name))
		for _, alias := range entry.Aliases {
			keys = append(keys, Normalize(alias))
		}
		for _, key := range keys {
			if key == "" {
				continue
			}
			if existing, ok := index[key]; ok && existing <= code {
				continue
			}
			index[key] = code
		}
	}
	return &Resolver{table: table, index: index}
}

// Code resolves a club name to its code. The name is normalized before
// lookup, so filename spellings, display names, and already-normalized names
// all resolve. The second return reports whether the club is known.
func (r *Resolver) Code(name string) (string, bool) {
	key := Normalize(name)
	if key == "" {
		return "", false
	}
	code, ok := r.index[key]
	return code, ok
}

// Name returns the display name for a club, resolving through the alias
// table first so any known spelling works.
func (r *Resolver) Name(name string) (string, bool) {
	code, ok := r.Code(name)
	if !ok {
		return "", false
	}
	return r.table.Name(code)
}

// Table exposes the underlying alias table.
func (r *Resolver) Table() *Table {
	return r.table
}

// KnownCode reports whether the three-letter code itself is defined.
func (r *Resolver) KnownCode(code string) bool {
	_, ok := r.table.Entry(strings.TrimSpace(code))
	return ok
}
