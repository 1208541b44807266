package lexer

import (
	"errors"
	"strconv"
	"unicode"
)

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token, derived from
// the symbol table.
var singleTokens = func() map[rune]TokenType {
	m := make(map[rune]TokenType, len(singles))
	for tt, sym := range singles {
		m[[]rune(sym)[0]] = tt
	}
	return m
}()

func lexText(l *Lexer) stateFn {
	l.acceptRunFunc(unicode.IsSpace)
	l.ignore()

	switch r := l.peek(); {
	case r == eof:
		return l.emit(TokEOF)
	case r == '.', r >= '0' && r <= '9':
		return lexNumber
	default:
		if tok, ok := singleTokens[r]; ok {
			l.next()
			return l.emit(tok)
		}
		l.next()
		return l.fail(&LexError{
			Kind: "unknown token",
			Text: l.input[l.start:l.pos],
			Col:  l.start + 1,
		})
	}
}

// lexNumber scans a maximal run of digits and dots. The run is not checked
// for a single dot up front; strconv rejects malformed runs like "1.2.3".
func lexNumber(l *Lexer) stateFn {
	l.acceptRun(numberChars)
	tok := l.thisToken(TokNumber)
	n, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		l.start = tok.pos
		return l.fail(&LexError{
			Kind: "invalid number",
			Text: tok.Value,
			Col:  tok.Pos(),
			Err:  err,
		})
	}
	// Out of range literals keep strconv's ±Inf.
	tok.Number = n
	return l.emitToken(tok)
}
