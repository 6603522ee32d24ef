package script

import (
	"io"
	"strings"
)

// Program is a parsed, fully type-checked script ready to execute.
type Program struct {
	root Statement
}

// Compile lexes and parses source, returning a Program once every
// expression in it has passed its construction-time type check.
func Compile(source io.ReadSeeker) (*Program, error) {
	lexer := NewLexer(NewReader(source))
	parser, err := NewParser(lexer)
	if err != nil {
		return nil, err
	}
	root, err := parser.ParseProgram()
	if err != nil {
		return nil, err
	}
	return &Program{root: root}, nil
}

// CompileString is a convenience wrapper around Compile for in-memory
// source text.
func CompileString(source string) (*Program, error) {
	return Compile(strings.NewReader(source))
}

// Run executes the program. The returned Value is only meaningful when
// the top level itself returned (a bare top-level `return expr;`);
// otherwise it is the zero Value.
func (p *Program) Run() (Value, error) {
	_, value, err := p.root.Execute()
	return value, err
}

// Format renders the compiled program back to readable source text.
func (p *Program) Format() string {
	return Format(p.root)
}

// EvalString compiles and immediately runs source, the common case for
// callers that don't need the intermediate Program.
func EvalString(source string) (Value, error) {
	program, err := CompileString(source)
	if err != nil {
		return Value{}, err
	}
	return program.Run()
}
