package glyph

import "strconv"

// Token is the persisted form of an item: a numeric code or a text payload.
type Token struct {
	Code   int
	Text   string
	isCode bool
}

// CodeToken builds a numeric token.
func CodeToken(code int) Token {
	return Token{Code: code, isCode: true}
}

// TextToken builds a text token.
func TextToken(text string) Token {
	return Token{Text: text}
}

// IsCode reports whether the token carries a numeric code.
func (t Token) IsCode() bool {
	return t.isCode
}

func (t Token) String() string {
	if t.isCode {
		return strconv.Itoa(t.Code)
	}
	return strconv.Quote(t.Text)
}

// TokenFor returns the token that identifies item when persisted. The output
// payload wins over the code; items with neither have no token.
func TokenFor(item Item) (Token, bool) {
	if item.Output != "" {
		return TextToken(item.Output), true
	}
	if item.Code != 0 {
		return CodeToken(item.Code), true
	}
	return Token{}, false
}

// Tokens maps items to tokens in order, skipping items without one.
func Tokens(items []Item) []Token {
	tokens := make([]Token, 0, len(items))
	for _, item := range items {
		if tok, ok := TokenFor(item); ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
