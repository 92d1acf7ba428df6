/*
Package pixeltype converts bitmap pixel fonts (BDF) into scalable vector
fonts (UFO-3 masters plus a designspace document for variable builds).

Every set pixel becomes a reference to a shared element glyph, a rounded
rectangle whose geometry is controlled by variation axes. Accented and other
decomposable characters are expressed as component references where the
component bitmaps tile the composed bitmap exactly, and mark-attachment
anchors are synthesized from the tiling so that text engines can position
combining marks on the fly.

# Pipeline

Loading and conversion are split into stages, each usable on its own:

	bdf.Load        parse the BDF container
	pix.FromBDF     build the glyph store (crop, sanitize, synthesize marks)
	Compose         decompose, tile and anchor every glyph
	ufo.Writer      serialize one UFO master per axis-extreme location

ConvertFile wires the stages together for the common case.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package pixeltype

import (
	"fmt"
	"os"

	"github.com/npillmayer/pixeltype/bdf"
	"github.com/npillmayer/pixeltype/compose"
	"github.com/npillmayer/pixeltype/pix"
	"github.com/npillmayer/pixeltype/ufo"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pixeltype'
func tracer() tracing.Trace {
	return tracing.Select("pixeltype")
}

// Options control a font conversion. The zero value converts every glyph
// with metrics and naming taken from the BDF properties, producing a single
// static master at the default axis location.
type Options struct {
	// naming overrides; empty strings keep the BDF-derived values
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

	// metrics overrides, in pixels
	Ascent    pix.Option[int]
	Descent   pix.Option[int]
	CapHeight pix.Option[int]
	XHeight   pix.Option[int]

	UnderlinePosition  pix.Option[float64]
	UnderlineThickness pix.Option[float64]
	StrikeoutPosition  pix.Option[float64]
	StrikeoutThickness pix.Option[float64]

	SuperscriptScaleX  pix.Option[float64]
	SuperscriptScaleY  pix.Option[float64]
	SuperscriptOffsetX pix.Option[float64]
	SuperscriptOffsetY pix.Option[float64]
	SubscriptScaleX    pix.Option[float64]
	SubscriptScaleY    pix.Option[float64]
	SubscriptOffsetX   pix.Option[float64]
	SubscriptOffsetY   pix.Option[float64]

	Subset     pix.Subset
	NotdefCode pix.Option[rune]

	UnitsPerEm   int     // 0 = 2048
	GlyphScaleX  float64 // 0 = 1
	GlyphScaleY  float64 // 0 = 1
	GlyphOffsetX float64
	GlyphOffsetY float64
	DoubleStrike bool
	RandomSeed   int64

	VariableAxes []string
	Instances    []ufo.Instance
	StaticAxes   ufo.Location
}

// ConvertFile converts a BDF file into UFO masters under outdir: one master
// per min/max combination of the variable axes (a single master without
// variable axes), plus the designspace and build config tying them together.
// The returned Conversion carries the per-glyph outcomes and the issue log.
func ConvertFile(input, outdir string, opts Options) (*Conversion, error) {
	if len(opts.Instances) > 0 && len(opts.VariableAxes) == 0 {
		return nil, fmt.Errorf("cannot create variable font instances without variable font axes")
	}
	src, err := bdf.Load(input)
	if err != nil {
		return nil, err
	}
	font, err := pix.FromBDF(src, pix.LoadOptions{
		Subset:      opts.Subset,
		NotdefCode:  opts.NotdefCode,
		Substitutes: compose.ModifierSubstitutes(),
	})
	if err != nil {
		return nil, err
	}
	applyMetricOverrides(font, opts)

	conv := Compose(font)

	info := ufo.InfoFromBDF(font)
	applyInfoOverrides(&info, opts)

	sources := glyphSources(conv)

	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return nil, fmt.Errorf("masters folder: %w", err)
	}
	for _, master := range ufo.Masters(opts.VariableAxes, info.StyleName) {
		loc := masterLocation(opts.StaticAxes, master.Location)
		writer := ufo.NewWriter(info, loc)
		features := ufo.FeatureText(font.Store, conv.Registry,
			info.UnitsPerElementY(), info.UnitsPerElementX(loc))
		dir := outdir + "/" + ufo.FileName(info.FamilyName, master.Name) + ".ufo"
		if err := writer.WriteUFO(dir, sources, features); err != nil {
			return nil, err
		}
	}
	if err := ufo.WriteDesignspace(outdir, info, opts.VariableAxes, opts.Instances); err != nil {
		return nil, err
	}
	return conv, nil
}

// glyphSources assembles the writer inputs from the conversion outcomes:
// component references with their pixel-grid deltas for composed glyphs,
// plus the anchors accumulated in the registry. Component references are
// listed innermost placement first, i.e. the mark before its base.
func glyphSources(conv *Conversion) []ufo.GlyphSource {
	sources := make([]ufo.GlyphSource, 0, len(conv.Outcomes))
	for _, out := range conv.Outcomes {
		src := ufo.GlyphSource{
			Glyph:   out.Glyph,
			Anchors: conv.Registry.AnchorsOf(out.Glyph.Name),
		}
		if out.Composed() {
			for i := len(out.Placements) - 1; i >= 0; i-- {
				pl := out.Placements[i]
				component, _ := conv.Font.Store.Glyph(pl.Name)
				src.Components = append(src.Components, ufo.ComponentRef{
					Base:  pl.Name,
					Delta: pl.Offset.Sub(component.Offset),
				})
			}
		}
		sources = append(sources, src)
	}
	return sources
}

// masterLocation merges the static axis values over the defaults, then the
// master's own min/max values on top.
func masterLocation(static ufo.Location, master ufo.Location) ufo.Location {
	loc := ufo.DefaultLocation()
	for tag, v := range static {
		loc[tag] = v
	}
	for tag, v := range master {
		loc[tag] = v
	}
	return loc
}

func applyMetricOverrides(font *pix.Font, opts Options) {
	if v, ok := opts.Ascent.Unwrap(); ok {
		font.Metrics.Ascent = v
	}
	if v, ok := opts.Descent.Unwrap(); ok {
		font.Metrics.Descent = v
	}
	if v, ok := opts.CapHeight.Unwrap(); ok {
		font.Metrics.CapHeight = v
	}
	if v, ok := opts.XHeight.Unwrap(); ok {
		font.Metrics.XHeight = v
	}
}

func applyInfoOverrides(info *ufo.Info, opts Options) {
	setNonEmpty(&info.FamilyName, opts.FamilyName)
	setNonEmpty(&info.StyleName, opts.StyleName)
	setNonEmpty(&info.Version, opts.Version)
	setNonEmpty(&info.Copyright, opts.Copyright)
	setNonEmpty(&info.Designer, opts.Designer)
	setNonEmpty(&info.DesignerURL, opts.DesignerURL)
	setNonEmpty(&info.Manufacturer, opts.Manufacturer)
	setNonEmpty(&info.ManufacturerURL, opts.ManufacturerURL)
	setNonEmpty(&info.License, opts.License)
	setNonEmpty(&info.LicenseURL, opts.LicenseURL)

	info.UnderlinePosition = opts.UnderlinePosition.Or(info.UnderlinePosition)
	info.UnderlineThickness = opts.UnderlineThickness.Or(info.UnderlineThickness)
	info.StrikeoutPosition = opts.StrikeoutPosition.Or(info.StrikeoutPosition)
	info.StrikeoutThickness = opts.StrikeoutThickness.Or(info.StrikeoutThickness)

	info.SuperscriptScaleX = opts.SuperscriptScaleX.Or(info.SuperscriptScaleX)
	info.SuperscriptScaleY = opts.SuperscriptScaleY.Or(info.SuperscriptScaleY)
	info.SuperscriptOffsetX = opts.SuperscriptOffsetX.Or(info.SuperscriptOffsetX)
	info.SuperscriptOffsetY = opts.SuperscriptOffsetY.Or(info.SuperscriptOffsetY)
	info.SubscriptScaleX = opts.SubscriptScaleX.Or(info.SubscriptScaleX)
	info.SubscriptScaleY = opts.SubscriptScaleY.Or(info.SubscriptScaleY)
	info.SubscriptOffsetX = opts.SubscriptOffsetX.Or(info.SubscriptOffsetX)
	info.SubscriptOffsetY = opts.SubscriptOffsetY.Or(info.SubscriptOffsetY)

	if opts.UnitsPerEm > 0 {
		info.UnitsPerEm = opts.UnitsPerEm
	}
	if opts.GlyphScaleX != 0 {
		info.GlyphScaleX = opts.GlyphScaleX
	}
	if opts.GlyphScaleY != 0 {
		info.GlyphScaleY = opts.GlyphScaleY
	}
	info.GlyphOffsetX = opts.GlyphOffsetX
	info.GlyphOffsetY = opts.GlyphOffsetY
	info.DoubleStrike = opts.DoubleStrike
	info.RandomSeed = opts.RandomSeed
}

func setNonEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
