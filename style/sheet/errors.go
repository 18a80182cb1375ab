package sheet

import "fmt"

// Mode selects the parser's reaction to defective input.
type Mode int

// Parsing modes.
const (
	// Strict mode aborts the load at the first defect; no RuleSet is
	// produced.
	Strict Mode = iota
	// Lenient mode drops the offending rule or declaration, continues
	// parsing, and accumulates the defects (see RuleSet.Issues).
	Lenient
)

// ErrorKind classifies defects found during parsing.
type ErrorKind int

// Kinds of parse errors.
const (
	SyntaxError ErrorKind = iota
	UnknownProperty
	UnterminatedBlock
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case UnknownProperty:
		return "unknown property"
	case UnterminatedBlock:
		return "unterminated block"
	}
	return "parse error"
}

// ParseError describes a defect in stylesheet source text, located by
// line and column (1-based).
type ParseError struct {
	Kind    ErrorKind
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Column, e.Message)
}

func syntaxError(line, col int, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind:    SyntaxError,
		Line:    line,
		Column:  col,
		Message: fmt.Sprintf(format, args...),
	}
}
