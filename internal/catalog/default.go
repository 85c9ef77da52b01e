package catalog

import "github.com/atomicstack/tmux-popup-glyphs/internal/glyph"

func g(code int, label string) glyph.Item {
	return glyph.Item{Code: code, Label: label}
}

func seq(code int, label, output string) glyph.Item {
	return glyph.Item{Code: code, Label: label, Output: output}
}

var defaultCategories = []Category{
	{
		ID:    "smileys",
		Title: "Smileys",
		Items: []glyph.Item{
			g(0x1F600, "grinning face"),
			g(0x1F603, "grinning face with big eyes"),
			g(0x1F604, "grinning face with smiling eyes"),
			g(0x1F601, "beaming face"),
			g(0x1F602, "face with tears of joy"),
			g(0x1F923, "rolling on the floor laughing"),
			g(0x1F642, "slightly smiling face"),
			g(0x1F609, "winking face"),
			g(0x1F60A, "smiling face with smiling eyes"),
			g(0x1F60D, "smiling face with heart-eyes"),
			g(0x1F914, "thinking face"),
			g(0x1F610, "neutral face"),
			g(0x1F644, "face with rolling eyes"),
			g(0x1F62C, "grimacing face"),
			g(0x1F62D, "loudly crying face"),
			g(0x1F631, "face screaming in fear"),
			g(0x1F973, "partying face"),
			g(0x1F60E, "smiling face with sunglasses"),
		},
	},
	{
		ID:    "people",
		Title: "People",
		Items: []glyph.Item{
			g(0x1F44D, "thumbs up"),
			seq(0x1F44D, "thumbs up: medium skin tone", "👍🏽"),
			g(0x1F44E, "thumbs down"),
			g(0x1F44F, "clapping hands"),
			g(0x1F64F, "folded hands"),
			g(0x1F44B, "waving hand"),
			g(0x270C, "victory hand"),
			g(0x1F91D, "handshake"),
			g(0x1F4AA, "flexed biceps"),
			g(0x1F440, "eyes"),
			g(0x1F9E0, "brain"),
			seq(0x1F468, "man technologist", "👨‍💻"),
			seq(0x1F469, "woman technologist", "👩‍💻"),
			seq(0x1F937, "person shrugging", "🤷"),
		},
	},
	{
		ID:    "nature",
		Title: "Nature",
		Items: []glyph.Item{
			g(0x1F436, "dog face"),
			g(0x1F431, "cat face"),
			g(0x1F98A, "fox"),
			g(0x1F43B, "bear"),
			g(0x1F427, "penguin"),
			g(0x1F422, "turtle"),
			g(0x1F41B, "bug"),
			g(0x1F332, "evergreen tree"),
			g(0x1F335, "cactus"),
			g(0x1F340, "four leaf clover"),
			g(0x1F33B, "sunflower"),
			g(0x1F308, "rainbow"),
			g(0x1F525, "fire"),
			g(0x1F30A, "water wave"),
			g(0x26A1, "high voltage"),
			g(0x2744, "snowflake"),
		},
	},
	{
		ID:    "food",
		Title: "Food",
		Items: []glyph.Item{
			g(0x1F34E, "red apple"),
			g(0x1F34C, "banana"),
			g(0x1F353, "strawberry"),
			g(0x1F951, "avocado"),
			g(0x1F955, "carrot"),
			g(0x1F35E, "bread"),
			g(0x1F9C0, "cheese wedge"),
			g(0x1F355, "pizza"),
			g(0x1F354, "hamburger"),
			g(0x1F32E, "taco"),
			g(0x1F363, "sushi"),
			g(0x1F369, "doughnut"),
			g(0x1F370, "shortcake"),
			g(0x2615, "hot beverage"),
			g(0x1F37A, "beer mug"),
		},
	},
	{
		ID:    "symbols",
		Title: "Symbols",
		Items: []glyph.Item{
			seq(0x2764, "red heart", "❤️"),
			g(0x1F494, "broken heart"),
			g(0x2728, "sparkles"),
			g(0x2B50, "star"),
			g(0x2705, "check mark button"),
			g(0x274C, "cross mark"),
			g(0x26A0, "warning"),
			g(0x1F6AB, "prohibited"),
			g(0x2753, "question mark"),
			g(0x2757, "exclamation mark"),
			g(0x1F4AF, "hundred points"),
			g(0x1F680, "rocket"),
			g(0x1F389, "party popper"),
			g(0x1F41E, "lady beetle"),
			g(0x1F512, "locked"),
			g(0x1F527, "wrench"),
			seq(0x1F1F3, "flag: Norway", "🇳🇴"),
		},
	},
	{
		ID:    "arrows",
		Title: "Arrows",
		Items: []glyph.Item{
			g(0x2190, "leftwards arrow"),
			g(0x2191, "upwards arrow"),
			g(0x2192, "rightwards arrow"),
			g(0x2193, "downwards arrow"),
			g(0x2194, "left right arrow"),
			g(0x2195, "up down arrow"),
			g(0x21D0, "leftwards double arrow"),
			g(0x21D2, "rightwards double arrow"),
			g(0x21A9, "leftwards arrow with hook"),
			g(0x21AA, "rightwards arrow with hook"),
			g(0x27F5, "long leftwards arrow"),
			g(0x27F6, "long rightwards arrow"),
			g(0x2934, "arrow pointing rightwards then curving upwards"),
			g(0x2935, "arrow pointing rightwards then curving downwards"),
			g(0x1F504, "counterclockwise arrows button"),
		},
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultCategories, DefaultCellWidth, DefaultCellHeight)
	if err != nil {
		panic(err)
	}
	return c
}
