package srclang

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, src string) string {
	t.Helper()

	out, err := NewCompiler().CompileFromReader(strings.NewReader(src))
	require.NoError(t, err)

	return out
}

func TestCompilerVarDeclWithArithmetic(t *testing.T) {
	out := compile(t, `var x = 1 + 2`)
	requireEqualText(t, "let x: any = (1 + 2);", out)
}

func TestCompilerPrintMemberAccess(t *testing.T) {
	out := compile(t, `print(a.b)`)
	requireEqualText(t, "console.log(a.b);", out)
}

func TestCompilerFunctionFoldableReturn(t *testing.T) {
	out := compile(t, `
func add(a, b)
return 1 + 2
end
`)

	requireEqualText(t, "function add(a: any, b: any) {\n  return 3;\n}", out)
}

func TestCompilerFunctionNonFoldableReturn(t *testing.T) {
	out := compile(t, `
func add(a, b)
return a + b
end
`)

	requireEqualText(t, "function add(a: any, b: any) {\n  return (a + b);\n}", out)
}

func TestCompilerEventHandlerRewrite(t *testing.T) {
	out := compile(t, `
func _on_collision(o)
print(o)
end
`)

	requireEqualText(t, "onCollision((o: any) => {\n  console.log(o);\n})", out)
}

func TestCompilerCompoundAssign(t *testing.T) {
	out := compile(t, `
var x = 1
x += 5
`)

	requireEqualText(t, "let x: any = 1;\nx = (x + 5);", out)
}

func TestCompilerMultipleTopLevelStatements(t *testing.T) {
	out := compile(t, `
var x = 1
var y = 2
print(x)
`)

	requireEqualText(t, "let x: any = 1;\nlet y: any = 2;\nconsole.log(x);", out)
}

func TestCompilerHaltsOnFirstParseError(t *testing.T) {
	_, err := NewCompiler().CompileFromReader(strings.NewReader(`
var
var y = 2
`))

	require.Error(t, err)
}

func TestCompilerLexErrorPropagates(t *testing.T) {
	_, err := NewCompiler().CompileFromReader(strings.NewReader(`var x = @`))
	require.Error(t, err)
}

func TestCompileFromFile(t *testing.T) {
	f := writeTempSource(t, `var x = 1 + 2`)

	out, err := NewCompiler().Compile(f)
	require.NoError(t, err)
	assert.Equal(t, "let x: any = (1 + 2);", out)
}

func TestCompileMissingFile(t *testing.T) {
	_, err := NewCompiler().Compile("/nonexistent/path/does/not/exist.src")
	require.Error(t, err)
}

func writeTempSource(t *testing.T, src string) string {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "*.src")
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteString(src)
	require.NoError(t, err)

	return f.Name()
}
