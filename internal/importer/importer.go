package importer

import (
	"io"
	"sort"
	"strings"

	"github.com/nordbooks/backoffice-server/internal/statement"
)

// Parser converts an uploaded statement file into raw transaction rows.
// Parsers only split and map columns; all coercion happens in the
// statement package.
type Parser interface {
	Parse(r io.Reader) ([]statement.ParsedBankTransaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats lists the registered format names, sorted.
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.parsers))
	for key := range r.parsers {
		formats = append(formats, key)
	}
	sort.Strings(formats)
	return formats
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(GenericCSVParser())
	r.Register(DanskeCSVParser())
	return r
}
