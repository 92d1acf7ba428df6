package main

import (
	"fmt"

	"github.com/npillmayer/pixeltype"
	"github.com/pterm/pterm"
)

func printSummary(conv *pixeltype.Conversion) {
	composed, attempted := 0, 0
	for _, out := range conv.Outcomes {
		if out.Attempted {
			attempted++
		}
		if out.Composed() {
			composed++
		}
	}
	pterm.Printf("%d glyphs converted, %d of %d decomposable glyphs composed\n",
		len(conv.Outcomes), composed, attempted)
	if conv.Issues.HasWarnings() {
		pterm.Printf("%d warnings, inspect with 'issues'\n", len(conv.Issues.Warnings()))
	}
}

func (intp *Intp) printGlyph(arg string) {
	glyph, ok := intp.lookupGlyph(arg)
	if !ok {
		pterm.Error.Printf("no glyph for %q\n", arg)
		return
	}
	pterm.Printf("glyph %s (%s)\n", glyph.Name, glyph.CodeString())
	pterm.Printf("offset %v, advance %d\n", glyph.Offset, glyph.Advance)
	pterm.Println(glyph.Bitmap.String())
	out, ok := intp.outcomeOf(glyph.Name)
	if !ok || !out.Attempted {
		return
	}
	pterm.Printf("tiling status: %s\n", out.Status)
	if !out.Composed() {
		return
	}
	data := [][]string{
		{"Component", "Offset"},
	}
	for _, pl := range out.Placements {
		data = append(data, []string{pl.Name, pl.Offset.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) printAnchors(arg string) {
	glyph, ok := intp.lookupGlyph(arg)
	if !ok {
		pterm.Error.Printf("no glyph for %q\n", arg)
		return
	}
	anchors := intp.conv.Registry.AnchorsOf(glyph.Name)
	if len(anchors) == 0 {
		pterm.Printf("glyph %s has no anchors\n", glyph.Name)
		return
	}
	data := [][]string{
		{"Anchor", "Position"},
	}
	for _, a := range anchors {
		data = append(data, []string{a.Name, a.Pos.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) printIssues() {
	issues := intp.conv.Issues.Issues()
	if len(issues) == 0 {
		pterm.Println("no issues recorded")
		return
	}
	data := [][]string{
		{"Severity", "Glyph", "Stage", "Detail"},
	}
	for _, issue := range issues {
		data = append(data, []string{
			issue.Severity.String(),
			fmt.Sprintf("%s (U+%04x)", issue.Glyph, issue.Code),
			issue.Stage,
			issue.Detail,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
