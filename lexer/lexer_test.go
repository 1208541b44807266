package lexer

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to test the lexer
func testLexer(t *testing.T, input string, expectedTokens []Token) {
	t.Helper()

	l := New(input)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		require.NoError(t, err, "lexing %q", input)
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			break
		}
	}
	if len(tokens) != len(expectedTokens) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expectedTokens), len(tokens), tokens)
	}
	for i, expectedToken := range expectedTokens {
		token := tokens[i]

		if token.Type != expectedToken.Type {
			t.Fatalf("tests[%d] - wrong type. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Type, expectedToken, token.Type, token)
		}

		if token.Value != expectedToken.Value {
			t.Fatalf("tests[%d] - wrong value. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Value, expectedToken, token.Value, token)
		}

		if token.Number != expectedToken.Number {
			t.Fatalf("tests[%d] - wrong number. expected=%v, got=%v (%s)",
				i, expectedToken.Number, token.Number, token)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if len(tokenTypeStrings) != int(FinalToken) {
		t.Fatalf("Expected %d token types in tokenTypeStrings, got %d", FinalToken, len(tokenTypeStrings))
	}
	assert.Equal(t, "TokenType(42)", TokenType(42).String())
}

func TestLexerSingleNumber(t *testing.T) {
	testLexer(t, "42", []Token{
		{Type: TokNumber, Value: "42", Number: 42},
		{Type: TokEOF, Value: ""},
	})
}

func TestLexerOperators(t *testing.T) {
	testLexer(t, "+-*/()", []Token{
		{Type: TokPlus, Value: "+"},
		{Type: TokMinus, Value: "-"},
		{Type: TokMultiply, Value: "*"},
		{Type: TokDivide, Value: "/"},
		{Type: TokParenLeft, Value: "("},
		{Type: TokParenRight, Value: ")"},
		{Type: TokEOF, Value: ""},
	})
}

func TestLexerExpression(t *testing.T) {
	testLexer(t, "(3 + 4.5) * .25", []Token{
		{Type: TokParenLeft, Value: "("},
		{Type: TokNumber, Value: "3", Number: 3},
		{Type: TokPlus, Value: "+"},
		{Type: TokNumber, Value: "4.5", Number: 4.5},
		{Type: TokParenRight, Value: ")"},
		{Type: TokMultiply, Value: "*"},
		{Type: TokNumber, Value: ".25", Number: 0.25},
		{Type: TokEOF, Value: ""},
	})
}

func TestLexerWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "None", input: "1+2"},
		{name: "Spaces", input: "  1  +  2  "},
		{name: "Tabs", input: "\t1\t+\t2\t"},
		{name: "Newlines", input: "\n1\r\n+\n2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testLexer(t, tt.input, []Token{
				{Type: TokNumber, Value: "1", Number: 1},
				{Type: TokPlus, Value: "+"},
				{Type: TokNumber, Value: "2", Number: 2},
				{Type: TokEOF, Value: ""},
			})
		})
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"0", 0},
		{"007", 7},
		{"1.", 1},
		{".5", 0.5},
		{"3.14159", 3.14159},
		{"9876543210", 9876543210},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testLexer(t, tt.input, []Token{
				{Type: TokNumber, Value: tt.input, Number: tt.expected},
				{Type: TokEOF, Value: ""},
			})
		})
	}
}

func TestLexerNumberOutOfRange(t *testing.T) {
	input := "1" + strings.Repeat("0", 400)
	tok, err := New(input).NextToken()
	require.NoError(t, err)
	assert.Equal(t, TokNumber, tok.Type)
	assert.True(t, math.IsInf(tok.Number, 1), "expected +Inf, got %v", tok.Number)
}

func TestLexerEOFIsIdempotent(t *testing.T) {
	l := New("7 ")
	tok, err := l.NextToken()
	require.NoError(t, err)
	require.Equal(t, TokNumber, tok.Type)
	for i := 0; i < 3; i++ {
		tok, err := l.NextToken()
		require.NoError(t, err)
		assert.Equal(t, TokEOF, tok.Type, "call %d", i)
	}
}

func TestLexerErrorCases(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		before []TokenType // Tokens successfully lexed before the error.
		kind   string
		text   string
		col    int
	}{
		{
			name:  "Unknown character",
			input: "@",
			kind:  "unknown token",
			text:  "@",
			col:   1,
		},
		{
			name:   "Unknown character mid expression",
			input:  "1 + 2 @ 3",
			before: []TokenType{TokNumber, TokPlus, TokNumber},
			kind:   "unknown token",
			text:   "@",
			col:    7,
		},
		{
			name:  "Letters",
			input: "x",
			kind:  "unknown token",
			text:  "x",
			col:   1,
		},
		{
			name:  "Multibyte rune",
			input: "×",
			kind:  "unknown token",
			text:  "×",
			col:   1,
		},
		{
			name:   "Exponent is not an operator",
			input:  "2^3",
			before: []TokenType{TokNumber},
			kind:   "unknown token",
			text:   "^",
			col:    2,
		},
		{
			name:  "Multiple dots",
			input: "1.2.3",
			kind:  "invalid number",
			text:  "1.2.3",
			col:   1,
		},
		{
			name:   "Lone dot",
			input:  "2 * .",
			before: []TokenType{TokNumber, TokMultiply},
			kind:   "invalid number",
			text:   ".",
			col:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			for i, want := range tt.before {
				tok, err := l.NextToken()
				require.NoError(t, err, "token %d", i)
				require.Equal(t, want, tok.Type, "token %d", i)
			}
			tok, err := l.NextToken()
			require.Error(t, err)
			assert.Equal(t, TokError, tok.Type)

			var lexErr *LexError
			require.True(t, errors.As(err, &lexErr), "expected *LexError, got %T", err)
			assert.Equal(t, tt.kind, lexErr.Kind)
			assert.Equal(t, tt.text, lexErr.Text)
			assert.Equal(t, tt.col, lexErr.Pos())

			// The error is sticky.
			_, again := l.NextToken()
			assert.Same(t, lexErr, again)
		})
	}
}

func TestLexErrorUnwrap(t *testing.T) {
	_, err := New("1..").NextToken()
	require.Error(t, err)
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.EqualError(t, err, `lex error at column 1: invalid number "1.."`)
}

func TestTokenString(t *testing.T) {
	l := New("  12 +")
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, `NUMBER[3]: "12"`, tok.String())
	assert.Equal(t, 3, tok.Pos())

	tok, err = l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, `PLUS[6]: "+"`, tok.String())
	assert.Equal(t, "+", tok.Type.Symbol())

	tok, err = l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, "EOF", tok.String())
}

func TestSingleTokensMatchSymbols(t *testing.T) {
	require.Len(t, singleTokens, len(singles))
	for r, tt := range singleTokens {
		assert.Equal(t, string(r), tt.Symbol(), "rune %q", r)
	}
	for tt, sym := range singles {
		testLexer(t, sym, []Token{
			{Type: tt, Value: sym},
			{Type: TokEOF},
		})
	}
}
