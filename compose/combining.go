package compose

// Mark is static metadata for a combining-mark character: a display label,
// the anchor class the mark attaches with, and the code of the spacing
// "modifier letter" glyph that historically renders the mark when a font has
// no dedicated combining glyph (0 when no such substitute exists).
type Mark struct {
	Label    string
	Anchor   string
	Modifier rune
}

// marks maps combining-mark codes to their metadata. Anchor classes "top",
// "top.shifted", "top.right", "horn" and "overlay" attach at the mark's
// underside; "bottom", "cedilla" and "ogonek" attach at its upper edge.
var marks = map[rune]Mark{
	0x300:  {"grave accent", "top", 0x2cb},
	0x301:  {"acute accent", "top.shifted", 0x2ca},
	0x302:  {"circumflex accent", "top", 0x2c6},
	0x303:  {"tilde", "top.shifted", 0x2dc},
	0x304:  {"macron", "top", 0x2c9},
	0x306:  {"breve", "top", 0x2d8},
	0x307:  {"dot above", "top", 0x2d9},
	0x308:  {"diaeresis", "top", 0xa8},
	0x309:  {"hook above", "top", 0},
	0x30a:  {"ring above", "top", 0x2da},
	0x30b:  {"double acute accent", "top.shifted", 0x2dd},
	0x30c:  {"caron", "top", 0x2c7},
	0x30d:  {"vertical line above", "top", 0x2c8},
	0x30f:  {"double grave accent", "top", 0x2f5},
	0x311:  {"inverted breve", "top", 0x1aff},
	0x313:  {"comma above", "top", 0x2c},
	0x314:  {"reversed comma above", "top", 0},
	0x315:  {"comma above right", "top.right", 0x2c},
	0x31b:  {"horn", "horn", 0},
	0x323:  {"dot below", "bottom", 0x2d9},
	0x324:  {"diaeresis below", "bottom", 0xa8},
	0x325:  {"ring below", "bottom", 0x2da},
	0x326:  {"comma below", "bottom", 0x2c},
	0x327:  {"cedilla", "cedilla", 0xb8},
	0x328:  {"ogonek", "ogonek", 0x2db},
	0x32d:  {"circumflex accent below", "bottom", 0x2c6},
	0x32e:  {"breve below", "bottom", 0x2d8},
	0x32f:  {"inverted breve below", "bottom", 0x1aff},
	0x330:  {"tilde below", "bottom.shifted", 0x2dc},
	0x331:  {"macron below", "bottom", 0x2c9},
	0x332:  {"low line", "top", 0x5f},
	0x335:  {"short stroke overlay", "overlay", 0},
	0x342:  {"greek perispomeni", "top.shifted", 0x2dc},
	0x343:  {"greek koronis", "top", 0x2c},
	0x344:  {"greek dialytika tonos", "top", 0xa8},
	0x345:  {"greek ypogegrammeni", "bottom", 0x37a},
	0x359:  {"asterisk below", "bottom", 0},
	0x35c:  {"double breve below", "bottom", 0},
	0x35f:  {"double macron below", "bottom", 0x2ed},
	0x1dc4: {"macron acute", "top", 0},
	0x1dc5: {"grave macron", "top", 0},
	0x1dc6: {"macron grave", "top", 0},
	0x1dc7: {"acute macron", "top", 0},
	0x1dca: {"latin small letter r below", "bottom", 0},
}

// MarkInfo returns the metadata of a combining-mark code.
func MarkInfo(code rune) (Mark, bool) {
	m, ok := marks[code]
	return m, ok
}

// IsMark reports whether a code is a registered combining-mark code.
func IsMark(code rune) bool {
	_, ok := marks[code]
	return ok
}

// MarkCodes returns all registered combining-mark codes in ascending order.
func MarkCodes() []rune {
	codes := make([]rune, 0, len(marks))
	for c := range marks {
		codes = append(codes, c)
	}
	for i := 1; i < len(codes); i++ {
		for j := i; j > 0 && codes[j] < codes[j-1]; j-- {
			codes[j], codes[j-1] = codes[j-1], codes[j]
		}
	}
	return codes
}

// ModifierSubstitutes returns the mapping from combining-mark code to
// modifier-letter substitute code, for marks that have one. Glyph stores use
// it to synthesize combining glyphs a font does not cover natively.
func ModifierSubstitutes() map[rune]rune {
	subs := make(map[rune]rune, len(marks))
	for code, m := range marks {
		if m.Modifier != 0 {
			subs[code] = m.Modifier
		}
	}
	return subs
}

// attachesBelow reports whether an anchor class attaches at the mark's upper
// edge (marks hanging below the base) rather than its underside.
func attachesBelow(anchorName string) bool {
	switch anchorName {
	case "bottom", "cedilla", "ogonek":
		return true
	}
	return false
}

// TopAnchorClass reports whether an anchor class belongs to the "above the
// base" group used for the @topmarks feature class.
func TopAnchorClass(anchorName string) bool {
	return anchorName == "top" || anchorName == "top.shifted"
}
