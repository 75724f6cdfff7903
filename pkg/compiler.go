package srclang

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Compiler owns the pipeline end to end: lex, parse, generate. Each
// call is a fresh pass; no state is shared between calls.
type Compiler struct{}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile reads filename and transpiles its contents.
func (c *Compiler) Compile(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", errors.Wrapf(err, "open %s", filename)
	}
	defer f.Close()

	out, err := c.CompileFromReader(f)
	if err != nil {
		return "", errors.Wrapf(err, "compile %s", filename)
	}

	return out, nil
}

// CompileFromReader lexes and transpiles r's contents.
func (c *Compiler) CompileFromReader(r io.Reader) (string, error) {
	tokens, err := NewLexer(r).ScanAll()
	if err != nil {
		return "", errors.Wrap(err, "lex")
	}

	return c.Transpile(tokens)
}

// Transpile takes an already-lexed token stream, whose last token must
// have Kind TokenEOF, straight into the Parser and Generator.
func (c *Compiler) Transpile(tokens []Token) (string, error) {
	stmts, err := NewParser(tokens).Parse()
	if err != nil {
		return "", errors.Wrap(err, "parse")
	}

	out, err := NewGenerator().Generate(stmts)
	if err != nil {
		return "", errors.Wrap(err, "generate")
	}

	return out, nil
}
