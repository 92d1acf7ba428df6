package ufo

import (
	"strconv"
	"strings"

	"github.com/npillmayer/pixeltype/bdf"
	"github.com/npillmayer/pixeltype/pix"
)

var widthClassFromName = map[string]int{
	"UltraCondensed": 1,
	"ExtraCondensed": 2,
	"Condensed":      3,
	"SemiCondensed":  4,
	"Normal":         5,
	"SemiExpanded":   6,
	"Expanded":       7,
	"ExtraExpanded":  8,
	"UltraExpanded":  9,
}

var weightClassFromName = map[string]int{
	"Thin":       100,
	"ExtraLight": 200,
	"Light":      300,
	"Regular":    400,
	"Medium":     500,
	"SemiBold":   600,
	"Bold":       700,
	"ExtraBold":  800,
	"Black":      900,
}

var slopeFromSlant = map[string]string{
	"i":  "Italic",
	"ri": "Italic",
	"o":  "Oblique",
	"ro": "Oblique",
}

// filterName lowercases a name and drops everything but letters, for
// comparing BDF style properties against canonical class names.
func filterName(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// StyleName derives a style name ("Condensed Bold Italic") from a BDF
// font's SETWIDTH_NAME, WEIGHT_NAME and SLANT properties.
func StyleName(f *bdf.Font) string {
	var parts []string
	setwidth := filterName(f.StrProperty("SETWIDTH_NAME", ""))
	for name := range widthClassFromName {
		if strings.ToLower(name) == setwidth {
			parts = append(parts, name)
			break
		}
	}
	weightName := filterName(f.StrProperty("WEIGHT_NAME", ""))
	weight := "Regular"
	for name := range weightClassFromName {
		if strings.ToLower(name) == weightName {
			weight = name
			break
		}
	}
	parts = append(parts, weight)
	if slope, ok := slopeFromSlant[filterName(f.StrProperty("SLANT", ""))]; ok {
		parts = append(parts, slope)
	}
	return strings.Join(parts, " ")
}

// StyleMapNames computes the style-map family and style names: everything
// but Bold/Italic/Regular moves into the family name, the style collapses
// onto the four standard style-map values.
func StyleMapNames(familyName, styleName string) (string, string) {
	families := []string{familyName}
	bold, italic := false, false
	for _, style := range strings.Fields(styleName) {
		switch style {
		case "Bold":
			bold = true
		case "Italic":
			italic = true
		case "Regular":
		default:
			families = append(families, style)
		}
	}
	mapStyle := "regular"
	switch {
	case bold && italic:
		mapStyle = "bold italic"
	case bold:
		mapStyle = "bold"
	case italic:
		mapStyle = "italic"
	}
	return strings.Join(families, " "), mapStyle
}

// FileName builds the base file name for a family/style combination.
func FileName(familyName, styleName string) string {
	return strings.ReplaceAll(familyName, " ", "") + "-" +
		strings.ReplaceAll(styleName, " ", "")
}

// Info carries the font-wide naming and geometry data the UFO writer needs.
// Overridable string fields default from the BDF properties (see InfoFromBDF).
type Info struct {
	FamilyName      string
	StyleName       string
	Version         string
	Copyright       string
	Designer        string
	DesignerURL     string
	Manufacturer    string
	ManufacturerURL string
	License         string
	LicenseURL      string

	Metrics pix.Metrics
	BBoxMin pix.Offset
	BBoxMax pix.Offset

	UnderlinePosition  float64
	UnderlineThickness float64
	StrikeoutPosition  float64
	StrikeoutThickness float64

	SuperscriptScaleX  float64
	SuperscriptScaleY  float64
	SuperscriptOffsetX float64
	SuperscriptOffsetY float64
	SubscriptScaleX    float64
	SubscriptScaleY    float64
	SubscriptOffsetX   float64
	SubscriptOffsetY   float64

	UnitsPerEm   int
	GlyphScaleX  float64
	GlyphScaleY  float64
	GlyphOffsetX float64
	GlyphOffsetY float64
	DoubleStrike bool
	RandomSeed   int64
}

// InfoFromBDF fills an Info with defaults derived from the BDF container
// and the font's computed metrics. Callers overwrite individual fields
// afterwards from user configuration.
func InfoFromBDF(font *pix.Font) Info {
	src := font.Source
	info := Info{
		FamilyName:   src.StrProperty("FAMILY_NAME", src.Name),
		StyleName:    StyleName(src),
		Version:      src.StrProperty("FONT_VERSION", ""),
		Copyright:    src.StrProperty("COPYRIGHT", strings.Join(src.Comments, "\n")),
		Manufacturer: src.StrProperty("FOUNDRY", ""),

		Metrics: font.Metrics,
		BBoxMin: font.BBoxMin,
		BBoxMax: font.BBoxMax,

		UnderlinePosition:  float64(src.IntProperty("UNDERLINE_POSITION", 0)),
		UnderlineThickness: float64(src.IntProperty("UNDERLINE_THICKNESS", 0)),
		StrikeoutPosition:  float64(src.IntProperty("STRIKEOUT_ASCENT", 0)),
		StrikeoutThickness: float64(src.IntProperty("STRIKEOUT_DESCENT", 0)),

		SuperscriptScaleX: 0.6,
		SuperscriptScaleY: 0.6,
		SubscriptScaleX:   0.6,
		SubscriptScaleY:   0.6,

		UnitsPerEm:  2048,
		GlyphScaleX: 1,
		GlyphScaleY: 1,
	}
	info.SuperscriptOffsetY = float64(info.Metrics.CapHeight) * info.SuperscriptScaleY
	return info
}

// UnitsPerElementY is the number of font units per pixel row.
func (info Info) UnitsPerElementY() int {
	return info.UnitsPerEm / (info.Metrics.Ascent - info.Metrics.Descent)
}

// UnitsPerElementX is the number of font units per pixel column at a given
// axis location.
func (info Info) UnitsPerElementX(loc Location) float64 {
	return loc.Value("XESP") * info.GlyphScaleX * float64(info.UnitsPerElementY())
}

// versionNumbers extracts major/minor version numbers from a version string
// like "1.2" or "Version 1.2;rest".
func versionNumbers(version string) (int, int) {
	first, _, _ := strings.Cut(version, ";")
	first = strings.TrimPrefix(first, "Version ")
	majorText, minorText, found := strings.Cut(first, ".")
	if !found {
		return 1, 0
	}
	major, err1 := strconv.Atoi(strings.TrimSpace(majorText))
	minor, err2 := strconv.Atoi(strings.TrimSpace(minorText))
	if err1 != nil || err2 != nil {
		return 1, 0
	}
	return major, minor
}
