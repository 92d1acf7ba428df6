package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pixeltype"
	"github.com/npillmayer/pixeltype/compose"
	"github.com/npillmayer/pixeltype/pix"
	"github.com/npillmayer/pixeltype/ufo"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'pixeltype'
func tracer() tracing.Trace {
	return tracing.Select("pixeltype")
}

const intUnset = math.MinInt32

// multiFlag collects repeated occurrences of a flag.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ";") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.pixeltype": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	interactive := flag.Bool("interactive", false, "Inspect the conversion in a REPL after writing")

	familyName := flag.String("family-name", "", "overrides the font family name string")
	styleName := flag.String("style-name", "", "overrides the font style name string (e.g. \"Condensed Bold Italic\")")
	fontVersion := flag.String("font-version", "", "overrides the font version string")
	copyright := flag.String("copyright", "", "overrides the font copyright string")
	designer := flag.String("designer", "", "overrides the font designer string")
	designerURL := flag.String("designer-url", "", "overrides the font designer URL string")
	manufacturer := flag.String("manufacturer", "", "overrides the font manufacturer string")
	manufacturerURL := flag.String("manufacturer-url", "", "overrides the font manufacturer URL string")
	license := flag.String("license", "", "overrides the font license string")
	licenseURL := flag.String("license-url", "", "overrides the font license URL string")

	ascent := flag.Int("ascent", intUnset, "overrides the font ascent in pixels (baseline to top of line)")
	descent := flag.Int("descent", intUnset, "overrides the font descent in pixels (baseline to bottom of line)")
	capHeight := flag.Int("cap-height", intUnset, "overrides the font cap height in pixels (typically of uppercase A)")
	xHeight := flag.Int("x-height", intUnset, "overrides the font x height in pixels (typically of lowercase x)")

	underlinePos := flag.Float64("underline-position", math.NaN(), "sets the font underline position in pixels (top, relative to the baseline)")
	underlineThick := flag.Float64("underline-thickness", math.NaN(), "sets the font underline thickness in pixels")
	strikeoutPos := flag.Float64("strikeout-position", math.NaN(), "sets the font strikeout position in pixels (top, relative to the baseline)")
	strikeoutThick := flag.Float64("strikeout-thickness", math.NaN(), "sets the font strikeout thickness in pixels")
	superScaleX := flag.Float64("superscript-scale-x", math.NaN(), "sets the font superscript x scale")
	superScaleY := flag.Float64("superscript-scale-y", math.NaN(), "sets the font superscript y scale")
	superOffX := flag.Float64("superscript-offset-x", math.NaN(), "sets the font superscript x offset in pixels")
	superOffY := flag.Float64("superscript-offset-y", math.NaN(), "sets the font superscript y offset in pixels")
	subScaleX := flag.Float64("subscript-scale-x", math.NaN(), "sets the font subscript x scale")
	subScaleY := flag.Float64("subscript-scale-y", math.NaN(), "sets the font subscript y scale")
	subOffX := flag.Float64("subscript-offset-x", math.NaN(), "sets the font subscript x offset in pixels")
	subOffY := flag.Float64("subscript-offset-y", math.NaN(), "sets the font subscript y offset in pixels")

	subset := flag.String("codepoint-subset", "", "specifies a comma-separated subset of Unicode characters to convert (e.g. 0x0-0x2000,0x20ee)")
	notdef := flag.String("notdef-codepoint", "", "specifies the codepoint for the .notdef character")
	glyphScaleX := flag.Float64("glyph-scale-x", 1, "sets the glyph x scale")
	glyphScaleY := flag.Float64("glyph-scale-y", 1, "sets the glyph y scale")
	glyphOffsetX := flag.Float64("glyph-offset-x", 0, "sets the glyph x offset in pixels")
	glyphOffsetY := flag.Float64("glyph-offset-y", 0, "sets the glyph y offset in pixels")
	randomSeed := flag.Int64("random-seed", 0, "sets the random seed for the EJIT axis")
	unitsPerEm := flag.Int("units-per-em", 2048, "sets the units per em value")
	doubleStrike := flag.Bool("double-strike", false, "adds a double strike at the vertical half pixel")
	axesLimits := flag.String("axes-limits", "", "overrides the axes limits (e.g. \"XESP=0.25-1.2\")")
	variableAxes := flag.String("variable-axes", "", "builds a variable font with the specified axes: [axis][,...]")
	staticAxes := flag.String("static-axes", "", "sets the static axes: [axis]=[value][,...]")
	var instanceSpecs multiFlag
	flag.Var(&instanceSpecs, "variable-instance", "builds a variable font instance: [style-name][,[axis]=[value]][,...]")

	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to pixeltype")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}

	if flag.NArg() != 2 {
		pterm.Error.Println("usage: pixcli [options] <input.bdf> <masters-folder>")
		os.Exit(2)
	}
	input, outdir := flag.Arg(0), flag.Arg(1)

	if err := applyAxesLimits(*axesLimits); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}

	opts := pixeltype.Options{
		FamilyName:      *familyName,
		StyleName:       *styleName,
		Version:         *fontVersion,
		Copyright:       *copyright,
		Designer:        *designer,
		DesignerURL:     *designerURL,
		Manufacturer:    *manufacturer,
		ManufacturerURL: *manufacturerURL,
		License:         *license,
		LicenseURL:      *licenseURL,

		Ascent:    optInt(*ascent),
		Descent:   optInt(*descent),
		CapHeight: optInt(*capHeight),
		XHeight:   optInt(*xHeight),

		UnderlinePosition:  optFloat(*underlinePos),
		UnderlineThickness: optFloat(*underlineThick),
		StrikeoutPosition:  optFloat(*strikeoutPos),
		StrikeoutThickness: optFloat(*strikeoutThick),
		SuperscriptScaleX:  optFloat(*superScaleX),
		SuperscriptScaleY:  optFloat(*superScaleY),
		SuperscriptOffsetX: optFloat(*superOffX),
		SuperscriptOffsetY: optFloat(*superOffY),
		SubscriptScaleX:    optFloat(*subScaleX),
		SubscriptScaleY:    optFloat(*subScaleY),
		SubscriptOffsetX:   optFloat(*subOffX),
		SubscriptOffsetY:   optFloat(*subOffY),

		UnitsPerEm:   *unitsPerEm,
		GlyphScaleX:  *glyphScaleX,
		GlyphScaleY:  *glyphScaleY,
		GlyphOffsetX: *glyphOffsetX,
		GlyphOffsetY: *glyphOffsetY,
		DoubleStrike: *doubleStrike,
		RandomSeed:   *randomSeed,
	}
	var err error
	if opts.Subset, err = pix.ParseSubset(*subset); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	if *notdef != "" {
		code, err := strconv.ParseInt(*notdef, 0, 32)
		if err != nil {
			tracer().Errorf("invalid notdef codepoint %q", *notdef)
			os.Exit(2)
		}
		opts.NotdefCode = pix.Some(rune(code))
	}
	if *variableAxes != "" {
		opts.VariableAxes = strings.Split(*variableAxes, ",")
		for _, tag := range opts.VariableAxes {
			if _, ok := ufo.AxisInfo(tag); !ok {
				tracer().Errorf("invalid variable axis %q", tag)
				os.Exit(2)
			}
		}
	}
	if opts.StaticAxes, err = ufo.ParseLocation(*staticAxes); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	for _, spec := range instanceSpecs {
		inst, err := parseInstance(spec)
		if err != nil {
			tracer().Errorf(err.Error())
			os.Exit(2)
		}
		opts.Instances = append(opts.Instances, inst)
	}

	pterm.Info.Printf("Converting %s\n", input)
	conv, err := pixeltype.ConvertFile(input, outdir, opts)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	printSummary(conv)

	if *interactive {
		repl, err := readline.New("pix > ")
		if err != nil {
			tracer().Errorf(err.Error())
			os.Exit(3)
		}
		pterm.Info.Println("Quit with <ctrl>D")
		intp := &Intp{repl: repl, conv: conv}
		intp.REPL()
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func optInt(v int) pix.Option[int] {
	if v == intUnset {
		return pix.None[int]()
	}
	return pix.Some(v)
}

func optFloat(v float64) pix.Option[float64] {
	if math.IsNaN(v) {
		return pix.None[float64]()
	}
	return pix.Some(v)
}

// applyAxesLimits parses a limits override of the form "XESP=0.25-1.2,…"
// and installs it.
func applyAxesLimits(spec string) error {
	if spec == "" {
		return nil
	}
	for _, token := range strings.Split(spec, ",") {
		tag, limits, found := strings.Cut(token, "=")
		if !found {
			return fmt.Errorf("invalid axis limits %q", token)
		}
		minText, maxText, found := strings.Cut(limits, "-")
		if !found {
			return fmt.Errorf("invalid axis limits %q", token)
		}
		min, err1 := strconv.ParseFloat(minText, 64)
		max, err2 := strconv.ParseFloat(maxText, 64)
		if err1 != nil || err2 != nil {
			return fmt.Errorf("invalid axis limits %q", token)
		}
		if err := ufo.SetAxisLimits(tag, min, max); err != nil {
			return err
		}
	}
	return nil
}

// parseInstance parses "Medium,ESIZ=0.5" into a named instance.
func parseInstance(spec string) (ufo.Instance, error) {
	name, rest, _ := strings.Cut(spec, ",")
	loc, err := ufo.ParseLocation(rest)
	if err != nil {
		return ufo.Instance{}, err
	}
	return ufo.Instance{Name: name, Location: loc}, nil
}

// Intp is our interpreter object
type Intp struct {
	conv *pixeltype.Conversion
	repl *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(cmd) {
	case "quit":
		return true
	case "glyph":
		intp.printGlyph(arg)
	case "decompose":
		intp.printDecomposition(arg)
	case "anchors":
		intp.printAnchors(arg)
	case "issues":
		intp.printIssues()
	default:
		help(cmd)
	}
	return false
}

// lookupGlyph resolves a REPL argument, either a glyph name or a codepoint
// like 0xe1 or U+00E1.
func (intp *Intp) lookupGlyph(arg string) (*pix.Glyph, bool) {
	store := intp.conv.Font.Store
	if g, ok := store.Glyph(arg); ok {
		return g, true
	}
	if code, ok := parseCodepoint(arg); ok {
		if g, ok := store.ByCode(code); ok {
			return g, true
		}
	}
	return nil, false
}

func parseCodepoint(arg string) (rune, bool) {
	text := arg
	if strings.HasPrefix(arg, "U+") || strings.HasPrefix(arg, "u+") {
		text = "0x" + arg[2:]
	}
	code, err := strconv.ParseInt(text, 0, 32)
	if err != nil {
		return 0, false
	}
	return rune(code), true
}

func (intp *Intp) outcomeOf(name string) (pixeltype.Outcome, bool) {
	for _, out := range intp.conv.Outcomes {
		if out.Glyph.Name == name {
			return out, true
		}
	}
	return pixeltype.Outcome{}, false
}

func (intp *Intp) printDecomposition(arg string) {
	code, ok := parseCodepoint(arg)
	if !ok {
		pterm.Error.Printf("not a codepoint: %s\n", arg)
		return
	}
	decomposition := compose.Decompose(code)
	if len(decomposition) == 0 {
		pterm.Printf("U+%04x has no decomposition\n", code)
		return
	}
	pterm.Printf("U+%04x -> [%s]\n", code, compose.FormatCodes(decomposition))
}
