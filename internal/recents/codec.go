package recents

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-popup-glyphs/internal/glyph"
	"github.com/atomicstack/tmux-popup-glyphs/internal/logging"
	"github.com/atomicstack/tmux-popup-glyphs/internal/logging/events"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const emptyEncoding = "[]"

// Encode serialises items front to back as a JSON array of tokens. Items with
// neither an output payload nor a code are skipped.
func Encode(items []glyph.Item) string {
	out := emptyEncoding
	for _, tok := range glyph.Tokens(items) {
		var value interface{} = tok.Text
		if tok.IsCode() {
			value = tok.Code
		}
		next, err := sjson.Set(out, "-1", value)
		if err != nil {
			logging.Error(fmt.Errorf("encode token %s: %w", tok, err))
			continue
		}
		out = next
	}
	return out
}

// Decode parses an encoded token array. It never fails: malformed input
// yields an empty slice and elements that are neither integers nor strings
// are dropped.
func Decode(encoded string) []glyph.Token {
	return decode("", encoded)
}

func decode(cache, encoded string) []glyph.Token {
	tokens := []glyph.Token{}
	trimmed := strings.TrimSpace(encoded)
	if trimmed == "" {
		return tokens
	}
	if !gjson.Valid(trimmed) {
		events.Recents.DropToken(cache, trimmed, "malformed")
		return tokens
	}
	parsed := gjson.Parse(trimmed)
	if !parsed.IsArray() {
		events.Recents.DropToken(cache, trimmed, "not an array")
		return tokens
	}
	parsed.ForEach(func(_, value gjson.Result) bool {
		switch value.Type {
		case gjson.Number:
			code := value.Int()
			if float64(code) != value.Num {
				events.Recents.DropToken(cache, value.Raw, "non-integer")
				return true
			}
			tokens = append(tokens, glyph.CodeToken(int(code)))
		case gjson.String:
			tokens = append(tokens, glyph.TextToken(value.Str))
		default:
			events.Recents.DropToken(cache, value.Raw, "invalid type")
		}
		return true
	})
	return tokens
}
