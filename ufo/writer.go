package ufo

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

const ufoCreator = "com.github.npillmayer.pixeltype"

// Writer serializes one UFO master: font info, the pixel element glyph, all
// converted glyphs, and the feature code. One Writer per master, since the
// axis location changes the element contour and the horizontal scale.
type Writer struct {
	Info     Info
	Location Location
	rng      *rand.Rand
}

// NewWriter creates a writer for one master location. The jitter source is
// seeded from Info.RandomSeed, so repeated conversions are reproducible.
func NewWriter(info Info, loc Location) *Writer {
	return &Writer{
		Info:     info,
		Location: loc,
		rng:      rand.New(rand.NewSource(info.RandomSeed)),
	}
}

// jitter draws a random element displacement in font units. The EJIT axis
// value is the standard deviation in pixels; draws of a full pixel or more
// are rejected so elements never leave their cell entirely.
func (wr *Writer) jitter() float64 {
	var v float64
	for {
		v = wr.rng.NormFloat64() * wr.Location.Value("EJIT")
		if math.Abs(v) < 1 {
			break
		}
	}
	return v * float64(wr.Info.UnitsPerElementY())
}

func (wr *Writer) geometry() geometry {
	strikes := 1
	if wr.Info.DoubleStrike {
		strikes = 2
	}
	return geometry{
		UnitsPerElementY: wr.Info.UnitsPerElementY(),
		UnitsPerElementX: wr.Info.UnitsPerElementX(wr.Location),
		GlyphOffsetX:     wr.Info.GlyphOffsetX,
		Strikes:          strikes,
		Jitter:           wr.jitter,
	}
}

// WriteUFO writes a complete UFO-3 package to dir, replacing any previous
// package there: metainfo, font info, layer contents, the glyph directory
// with one .glif per glyph plus the element glyph, and the feature code.
func (wr *Writer) WriteUFO(dir string, sources []GlyphSource, features string) error {
	tracer().Infof("writing UFO package %s", dir)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("UFO package: %w", err)
	}
	glyphsDir := filepath.Join(dir, "glyphs")
	if err := os.MkdirAll(glyphsDir, 0o755); err != nil {
		return fmt.Errorf("UFO package: %w", err)
	}
	if err := wr.writePlistFile(filepath.Join(dir, "metainfo.plist"), dict{
		"creator":       ufoCreator,
		"formatVersion": 3,
	}); err != nil {
		return err
	}
	if err := wr.writePlistFile(filepath.Join(dir, "fontinfo.plist"), wr.fontInfo()); err != nil {
		return err
	}
	if err := wr.writePlistFile(filepath.Join(dir, "layercontents.plist"), []any{
		[]any{"public.default", "glyphs"},
	}); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "features.fea"), []byte(features), 0o644); err != nil {
		return fmt.Errorf("UFO package: %w", err)
	}

	contents := dict{"_": "__.glif"}
	geom := wr.geometry()
	upeY := float64(geom.UnitsPerElementY)
	points := ElementContour(wr.Location, upeY, geom.UnitsPerElementX)
	if err := wr.writeGlifFile(filepath.Join(glyphsDir, "__.glif"), func(f *os.File) error {
		return writeElementGlif(f, points)
	}); err != nil {
		return err
	}
	for _, src := range sources {
		fileName := glifFileName(src.Glyph.Name)
		contents[src.Glyph.Name] = fileName
		src := src
		if err := wr.writeGlifFile(filepath.Join(glyphsDir, fileName), func(f *os.File) error {
			return writeGlif(f, src, geom)
		}); err != nil {
			return err
		}
	}
	return wr.writePlistFile(filepath.Join(glyphsDir, "contents.plist"), contents)
}

func (wr *Writer) writePlistFile(path string, root any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("UFO package: %w", err)
	}
	defer f.Close()
	if err := writePlist(f, root); err != nil {
		return fmt.Errorf("UFO package: %w", err)
	}
	return f.Close()
}

func (wr *Writer) writeGlifFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("UFO package: %w", err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return fmt.Errorf("UFO package: %w", err)
	}
	return f.Close()
}

// fontInfo builds the fontinfo.plist contents. The em box is centered on
// the line box: the descender moves down by half the difference between the
// em size and the line height, the ascender takes the rest.
func (wr *Writer) fontInfo() dict {
	info := wr.Info
	upeY := info.UnitsPerElementY()

	lineAscender := info.Metrics.Ascent * upeY
	lineDescender := info.Metrics.Descent * upeY
	lineHeight := lineAscender - lineDescender
	emDescender := lineDescender - (info.UnitsPerEm-lineHeight)/2
	emAscender := info.UnitsPerEm + emDescender

	widthClass, weightClass := 5, 400
	for _, part := range strings.Fields(info.StyleName) {
		if c, ok := widthClassFromName[part]; ok {
			widthClass = c
		}
		if c, ok := weightClassFromName[part]; ok {
			weightClass = c
		}
	}

	major, minor := versionNumbers(info.Version)
	versionName := info.Version
	if versionName != "" && !strings.HasPrefix(versionName, "Version ") {
		versionName = "Version " + versionName
	}

	styleMapFamily, styleMapStyle := StyleMapNames(info.FamilyName, info.StyleName)

	fi := dict{
		"familyName":         info.FamilyName,
		"styleName":          info.StyleName,
		"styleMapFamilyName": styleMapFamily,
		"styleMapStyleName":  styleMapStyle,
		"versionMajor":       major,
		"versionMinor":       minor,

		"unitsPerEm": info.UnitsPerEm,
		"descender":  emDescender,
		"ascender":   emAscender,
		"xHeight":    info.Metrics.XHeight * upeY,
		"capHeight":  info.Metrics.CapHeight * upeY,

		"openTypeHheaAscender":  lineAscender,
		"openTypeHheaDescender": lineDescender,
		"openTypeHheaLineGap":   0,

		"openTypeOS2WidthClass":    widthClass,
		"openTypeOS2WeightClass":   weightClass,
		"openTypeOS2VendorID":      "PXTP",
		"openTypeOS2TypoAscender":  lineAscender,
		"openTypeOS2TypoDescender": lineDescender,
		"openTypeOS2TypoLineGap":   0,
		"openTypeOS2WinAscent":     max(info.BBoxMax.Y*upeY, 0),
		"openTypeOS2WinDescent":    max(-info.BBoxMin.Y*upeY, 0),

		"openTypeOS2SubscriptXSize":     int(info.SubscriptScaleX * float64(info.UnitsPerEm)),
		"openTypeOS2SubscriptYSize":     int(info.SubscriptScaleY * float64(info.UnitsPerEm)),
		"openTypeOS2SubscriptXOffset":   int(info.SubscriptOffsetX * float64(upeY)),
		"openTypeOS2SubscriptYOffset":   int(info.SubscriptOffsetY * float64(upeY)),
		"openTypeOS2SuperscriptXSize":   int(info.SuperscriptScaleX * float64(info.UnitsPerEm)),
		"openTypeOS2SuperscriptYSize":   int(info.SuperscriptScaleY * float64(info.UnitsPerEm)),
		"openTypeOS2SuperscriptXOffset": int(info.SuperscriptOffsetX * float64(upeY)),
		"openTypeOS2SuperscriptYOffset": int(info.SuperscriptOffsetY * float64(upeY)),
		"openTypeOS2StrikeoutSize":      int(info.StrikeoutThickness * float64(upeY)),
		"openTypeOS2StrikeoutPosition":  int(info.StrikeoutPosition * float64(upeY)),

		"postscriptUnderlineThickness": int(info.UnderlineThickness * float64(upeY)),
		"postscriptUnderlinePosition":  int(info.UnderlinePosition * float64(upeY)),
	}
	putNonEmpty(fi, "copyright", info.Copyright)
	putNonEmpty(fi, "openTypeNameDesigner", info.Designer)
	putNonEmpty(fi, "openTypeNameDesignerURL", info.DesignerURL)
	putNonEmpty(fi, "openTypeNameManufacturer", info.Manufacturer)
	putNonEmpty(fi, "openTypeNameManufacturerURL", info.ManufacturerURL)
	putNonEmpty(fi, "openTypeNameLicense", info.License)
	putNonEmpty(fi, "openTypeNameLicenseURL", info.LicenseURL)
	putNonEmpty(fi, "openTypeNameVersion", versionName)
	return fi
}

func putNonEmpty(d dict, key, value string) {
	if value != "" {
		d[key] = value
	}
}
