// Package testsupport holds helpers shared by the pkg test files:
// fuzz-input generation for benchmarks, plus nicer diffs for test
// failures than testify's default %+v dump gives on deep AST trees or
// long strings.
package testsupport

import (
	"math/rand"
	"strings"

	"github.com/kr/pretty"
	"github.com/pmezard/go-difflib/difflib"
)

// DiffAST returns a structured, line-oriented diff between expected
// and actual values, for use in AST-equality test failures.
func DiffAST(expected, actual interface{}) string {
	diffs := pretty.Diff(expected, actual)
	if len(diffs) == 0 {
		return ""
	}

	return strings.Join(diffs, "\n")
}

// DiffText returns a unified diff between expected and actual generated
// source text, for use in generator golden-test failures.
func DiffText(expected, actual string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	}

	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "<diff error: " + err.Error() + ">"
	}

	return out
}

const validLexemes = "func;end;var;print;return;main;(;);,;.;\"a string\";\"\";+;-;*;/;=;+=;-=;++;--;123;321;3.14;true;false;\n"

// RandomSource returns size space-separated SrcLang lexemes, for
// lexer-throughput benchmarks.
func RandomSource(size int) string {
	return RandomSourceWithSep(size, " ")
}

func RandomSourceWithSep(size int, sep string) string {
	valid := strings.Split(validLexemes, ";")

	toks := make([]string, 0, size)
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
