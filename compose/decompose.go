package compose

import (
	"golang.org/x/text/unicode/norm"
)

// Decompose returns the ordered component codes a composed character should
// be tiled from, or nil when the character has to stay a standalone bitmap.
//
// The override table is consulted first; an override with an empty sequence
// forces "no decomposition". Otherwise the canonical Unicode decomposition
// is used, read from the NFD normalization properties. Compatibility-only
// mappings carry no canonical decomposition and are rejected that way. NFD
// yields the fully expanded decomposition, which has to be folded back to
// the single-level mapping: a singleton (U+212B Angstrom sign decomposes to
// A-with-ring and nothing else) recomposes under NFC to one character other
// than the input and is returned as that single component; an expansion of
// more than two runes has its head recomposed, so that "e with macron and
// acute" decomposes into the e-macron glyph plus the acute, not into a
// three-mark chain. Plain-space components are stripped. A result of length
// one is a valid decomposition and proceeds to tiling.
func Decompose(code rune) []rune {
	if seq, ok := overrides[code]; ok {
		return stripSpaces(seq)
	}
	if code < 0 {
		return nil
	}
	dec := norm.NFD.PropertiesString(string(code)).Decomposition()
	if len(dec) == 0 {
		return nil
	}
	if nfc := []rune(norm.NFC.String(string(dec))); len(nfc) == 1 && nfc[0] != code {
		return nfc
	}
	runes := []rune(string(dec))
	if len(runes) > 2 {
		head := []rune(norm.NFC.String(string(runes[:len(runes)-1])))
		if len(head) == 1 {
			runes = []rune{head[0], runes[len(runes)-1]}
		}
	}
	return stripSpaces(runes)
}

func stripSpaces(codes []rune) []rune {
	out := codes[:0:0]
	for _, c := range codes {
		if c != 0x20 {
			out = append(out, c)
		}
	}
	return out
}
