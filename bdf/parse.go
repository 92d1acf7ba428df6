package bdf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// errFormat produces user level errors for BDF parsing.
func errFormat(message string, args ...interface{}) error {
	return fmt.Errorf("BDF font format: "+message, args...)
}

// Load reads and parses a BDF font from a file.
func Load(path string) (*Font, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	f, err := Parse(file)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded and parsed BDF %s with %d glyphs", f.Name, len(f.Glyphs))
	return f, nil
}

// Parse decodes a BDF font from a reader.
func Parse(r io.Reader) (*Font, error) {
	p := &parser{
		scanner: bufio.NewScanner(r),
		font: &Font{
			Properties: make(map[string]string),
		},
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.font, nil
}

type parser struct {
	scanner *bufio.Scanner
	font    *Font
	lineno  int
}

func (p *parser) next() (string, bool) {
	for p.scanner.Scan() {
		p.lineno++
		line := strings.TrimRight(p.scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		return line, true
	}
	return "", false
}

func (p *parser) run() error {
	line, ok := p.next()
	if !ok || !strings.HasPrefix(line, "STARTFONT") {
		return errFormat("missing STARTFONT")
	}
	for {
		line, ok = p.next()
		if !ok {
			return errFormat("unexpected end of file")
		}
		keyword, rest, _ := strings.Cut(line, " ")
		switch keyword {
		case "COMMENT":
			p.font.Comments = append(p.font.Comments, strings.TrimSpace(rest))
		case "FONT":
			p.font.Name = strings.TrimSpace(rest)
		case "SIZE":
			fields := strings.Fields(rest)
			if len(fields) < 1 {
				return errFormat("line %d: SIZE needs arguments", p.lineno)
			}
			v, err := strconv.Atoi(fields[0])
			if err != nil {
				return errFormat("line %d: bad SIZE: %v", p.lineno, err)
			}
			p.font.PointSize = v
		case "STARTPROPERTIES":
			if err := p.properties(); err != nil {
				return err
			}
		case "CHARS":
			// glyph count; glyphs are read until ENDFONT
		case "STARTCHAR":
			g, err := p.glyph(strings.TrimSpace(rest))
			if err != nil {
				return err
			}
			p.font.Glyphs = append(p.font.Glyphs, g)
		case "ENDFONT":
			return nil
		default:
			// FONTBOUNDINGBOX, SWIDTH at font level, vendor extensions
		}
	}
}

func (p *parser) properties() error {
	for {
		line, ok := p.next()
		if !ok {
			return errFormat("unterminated STARTPROPERTIES")
		}
		if strings.HasPrefix(line, "ENDPROPERTIES") {
			return nil
		}
		key, value, _ := strings.Cut(line, " ")
		value = strings.TrimSpace(value)
		value = strings.TrimPrefix(value, `"`)
		value = strings.TrimSuffix(value, `"`)
		p.font.Properties[key] = value
	}
}

func (p *parser) glyph(name string) (Glyph, error) {
	g := Glyph{Name: name, Code: -1}
	var sawBBX bool
	for {
		line, ok := p.next()
		if !ok {
			return g, errFormat("unterminated STARTCHAR %s", name)
		}
		keyword, rest, _ := strings.Cut(line, " ")
		switch keyword {
		case "ENCODING":
			fields := strings.Fields(rest)
			if len(fields) < 1 {
				return g, errFormat("line %d: ENCODING needs an argument", p.lineno)
			}
			v, err := strconv.Atoi(fields[0])
			if err != nil {
				return g, errFormat("line %d: bad ENCODING: %v", p.lineno, err)
			}
			g.Code = rune(v)
		case "DWIDTH":
			fields := strings.Fields(rest)
			if len(fields) < 1 {
				return g, errFormat("line %d: DWIDTH needs arguments", p.lineno)
			}
			v, err := strconv.Atoi(fields[0])
			if err != nil {
				return g, errFormat("line %d: bad DWIDTH: %v", p.lineno, err)
			}
			g.Advance = v
		case "BBX":
			fields := strings.Fields(rest)
			if len(fields) < 4 {
				return g, errFormat("line %d: BBX needs 4 arguments", p.lineno)
			}
			vals := make([]int, 4)
			for i, f := range fields[:4] {
				v, err := strconv.Atoi(f)
				if err != nil {
					return g, errFormat("line %d: bad BBX: %v", p.lineno, err)
				}
				vals[i] = v
			}
			g.W, g.H, g.OffX, g.OffY = vals[0], vals[1], vals[2], vals[3]
			sawBBX = true
		case "BITMAP":
			if !sawBBX {
				return g, errFormat("line %d: BITMAP before BBX", p.lineno)
			}
			if err := p.bitmap(&g); err != nil {
				return g, err
			}
		case "ENDCHAR":
			return g, nil
		default:
			// SWIDTH and friends carry no pixel information we need
		}
	}
}

// bitmap reads g.H hex rows. BDF stores the topmost row first; rows are
// reversed here so that row 0 is the bottom, per the grid convention.
func (p *parser) bitmap(g *Glyph) error {
	bytesPerRow := (g.W + 7) / 8
	rows := make([][]byte, g.H)
	for i := 0; i < g.H; i++ {
		line, ok := p.next()
		if !ok {
			return errFormat("unterminated BITMAP of %s", g.Name)
		}
		hex := strings.TrimSpace(line)
		row := make([]byte, bytesPerRow)
		for j := 0; j < bytesPerRow && 2*j+1 < len(hex)+1; j++ {
			end := 2*j + 2
			if end > len(hex) {
				end = len(hex)
			}
			v, err := strconv.ParseUint(hex[2*j:end], 16, 8)
			if err != nil {
				return errFormat("line %d: bad BITMAP row %q", p.lineno, hex)
			}
			if end-2*j == 1 {
				v <<= 4
			}
			row[j] = byte(v)
		}
		rows[g.H-1-i] = row
	}
	g.rows = rows
	return nil
}

// NewGlyph assembles a raw glyph from pre-decoded rows, given topmost row
// first. Intended for tests and synthetic fonts.
func NewGlyph(name string, code rune, w, h, offX, offY, advance int, topDownRows [][]byte) Glyph {
	rows := make([][]byte, len(topDownRows))
	for i, r := range topDownRows {
		rows[len(topDownRows)-1-i] = r
	}
	return Glyph{
		Name: name, Code: code,
		W: w, H: h, OffX: offX, OffY: offY, Advance: advance,
		rows: rows,
	}
}
