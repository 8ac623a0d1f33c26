package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeWrapsImplicitCompound(t *testing.T) {
	toks := Tokenize("f.lynx", `x = 1`, diag.NewCollectingSink())
	require.NotEmpty(t, toks)
	assert.Equal(t, token.CompoundStart, toks[0].Kind)
	assert.Equal(t, token.CompoundEnd, toks[len(toks)-1].Kind)
}

func TestTokenizeBasics(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		want  []token.Kind
	}{
		{"assignment", `x = 1`, []token.Kind{token.Identifier, token.Assign, token.Number}},
		{"type decl", `x : number`, []token.Kind{token.Identifier, token.Colon, token.Identifier}},
		{"compound", `x = { y = 1 }`, []token.Kind{
			token.Identifier, token.Assign, token.CompoundStart,
			token.Identifier, token.Assign, token.Number, token.CompoundEnd,
		}},
		{"list", `x = [ 1 2 3 ]`, []token.Kind{
			token.Identifier, token.Assign, token.ListStart,
			token.Number, token.Number, token.Number, token.ListEnd,
		}},
		{"string", `x = "hi"`, []token.Kind{token.Identifier, token.Assign, token.String}},
		{"dotted path", `x = a.b.c`, []token.Kind{
			token.Identifier, token.Assign, token.Identifier, token.Dot, token.Identifier, token.Dot, token.Identifier,
		}},
		{"self ref", `x = .`, []token.Kind{token.Identifier, token.Assign, token.Dot}},
		{"dashed identifier", `string-length`, []token.Kind{token.Identifier}},
		{"negative number", `x = -5`, []token.Kind{token.Identifier, token.Assign, token.Number}},
		{"block fold", `x = ( 1 2 )`, []token.Kind{
			token.Identifier, token.Assign, token.BlockStart, token.Number, token.Number, token.BlockEnd,
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks := Tokenize("f.lynx", c.src, diag.NewCollectingSink())
			require.NotNil(t, toks)
			inner := toks[1 : len(toks)-1]
			assert.Equal(t, c.want, kinds(inner))
		})
	}
}

func TestTokenizeStripsLineComments(t *testing.T) {
	toks := Tokenize("f.lynx", "x = 1 -- trailing comment\ny = 2", diag.NewCollectingSink())
	inner := toks[1 : len(toks)-1]
	assert.Equal(t, []token.Kind{
		token.Identifier, token.Assign, token.Number,
		token.Identifier, token.Assign, token.Number,
	}, kinds(inner))
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks := Tokenize("f.lynx", `x = "a\nb\t\"c\""`, diag.NewCollectingSink())
	inner := toks[1 : len(toks)-1]
	require.Len(t, inner, 3)
	assert.Equal(t, "a\nb\t\"c\"", inner[2].Lexeme)
}

func TestTokenizeUnterminatedStringFails(t *testing.T) {
	sink := diag.NewCollectingSink()
	toks := Tokenize("f.lynx", `x = "unterminated`, sink)
	assert.Nil(t, toks)
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, diag.Lex, sink.Last().Kind)
}

func TestTokenizeUnknownEscapeFails(t *testing.T) {
	sink := diag.NewCollectingSink()
	toks := Tokenize("f.lynx", `x = "\q"`, sink)
	assert.Nil(t, toks)
	assert.Equal(t, diag.Lex, sink.Last().Kind)
}

func TestTokenizeIllegalCharacterFails(t *testing.T) {
	sink := diag.NewCollectingSink()
	toks := Tokenize("f.lynx", `x = 1 $ 2`, sink)
	assert.Nil(t, toks)
	assert.Equal(t, diag.Lex, sink.Last().Kind)
}

func TestTokenizeLineColumnTracking(t *testing.T) {
	toks := Tokenize("f.lynx", "x = 1\ny = 2", diag.NewCollectingSink())
	inner := toks[1 : len(toks)-1]
	// y is on line 2
	var found bool
	for _, tok := range inner {
		if tok.Kind == token.Identifier && tok.Lexeme == "y" {
			assert.Equal(t, 2, tok.Line)
			found = true
		}
	}
	assert.True(t, found)
}

func TestTokenizeSignSplitsTwoNumbers(t *testing.T) {
	// Per DESIGN.md's tightening decision, "1-2" lexes as two Number
	// tokens rather than one loose "1-2" lexeme.
	toks := Tokenize("f.lynx", `1-2`, diag.NewCollectingSink())
	inner := toks[1 : len(toks)-1]
	require.Len(t, inner, 2)
	assert.Equal(t, "1", inner[0].Lexeme)
	assert.Equal(t, "-2", inner[1].Lexeme)
}
