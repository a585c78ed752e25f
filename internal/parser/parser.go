// Package parser defines the interface for parsing spatial instance data.
package parser

import (
	"context"
	"io"

	"github.com/yshekhar/cliquecoloc/pkg/model"
)

// Parser is the interface for parsing spatial instance data.
type Parser interface {
	// Parse parses spatial instance data from the reader.
	Parse(ctx context.Context, reader io.Reader) (*model.ParseResult, error)

	// SupportedFormats returns the formats supported by this parser.
	SupportedFormats() []string

	// Name returns the name of this parser.
	Name() string
}

// ParserFactory is a function that creates a new Parser instance.
type ParserFactory func(opts ...ParserOption) (Parser, error)

// ParserOption is a function that configures a Parser.
type ParserOption func(interface{})

// Registry holds registered parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates a new parser Registry.
func NewRegistry() *Registry {
	return &Registry{
		parsers: make(map[string]Parser),
	}
}

// Register registers a parser with the given format name.
func (r *Registry) Register(format string, parser Parser) {
	r.parsers[format] = parser
}

// Get returns a parser for the given format.
func (r *Registry) Get(format string) (Parser, bool) {
	parser, ok := r.parsers[format]
	return parser, ok
}

// ParseOptions holds common parsing options.
type ParseOptions struct {
	// StrictMode fails the whole parse on the first malformed row instead
	// of skipping it with a warning.
	StrictMode bool

	// MaxRows limits the maximum number of instance rows to parse, 0 for
	// no limit.
	MaxRows int64
}

// DefaultParseOptions returns default parsing options.
func DefaultParseOptions() *ParseOptions {
	return &ParseOptions{
		StrictMode: true,
		MaxRows:    0,
	}
}
