package compose

import (
	"fmt"

	"golang.org/x/text/unicode/runenames"
)

// IssueSeverity grades findings of the composition engine.
type IssueSeverity int

const (
	// SeverityNote marks expected, recoverable findings, such as a missing
	// component glyph in a reduced repertoire.
	SeverityNote IssueSeverity = iota
	// SeverityWarning marks findings that may indicate font-design
	// inconsistencies, such as failed tilings or conflicting anchors.
	SeverityWarning
)

// String returns a human-readable representation of the severity.
func (s IssueSeverity) String() string {
	switch s {
	case SeverityNote:
		return "note"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Issue is one finding of the composition engine. Findings are accumulated
// during a conversion and never abort it; the engine degrades to "no
// decomposition" for any glyph it cannot resolve.
type Issue struct {
	Severity IssueSeverity
	Glyph    string // name of the composed glyph
	Code     rune   // character code of the composed glyph, -1 if unencoded
	Stage    string // engine stage, e.g. "tiling", "anchors"
	Detail   string
}

// Error implements the error interface.
func (i Issue) Error() string {
	if i.Code >= 0 {
		return fmt.Sprintf("%s: U+%04x (%s) %s: %s",
			i.Severity, i.Code, runenames.Name(i.Code), i.Stage, i.Detail)
	}
	return fmt.Sprintf("%s: %s %s: %s", i.Severity, i.Glyph, i.Stage, i.Detail)
}

// IssueLog accumulates findings during one font conversion.
type IssueLog struct {
	issues []Issue
}

// NewIssueLog creates an empty issue log.
func NewIssueLog() *IssueLog {
	return &IssueLog{}
}

// Notef records a note-level finding for a glyph.
func (l *IssueLog) Notef(glyph string, code rune, stage, format string, args ...interface{}) {
	l.add(SeverityNote, glyph, code, stage, format, args...)
}

// Warnf records a warning-level finding for a glyph.
func (l *IssueLog) Warnf(glyph string, code rune, stage, format string, args ...interface{}) {
	l.add(SeverityWarning, glyph, code, stage, format, args...)
}

func (l *IssueLog) add(sev IssueSeverity, glyph string, code rune, stage, format string, args ...interface{}) {
	issue := Issue{
		Severity: sev,
		Glyph:    glyph,
		Code:     code,
		Stage:    stage,
		Detail:   fmt.Sprintf(format, args...),
	}
	l.issues = append(l.issues, issue)
	if sev == SeverityWarning {
		tracer().Errorf(issue.Error())
	} else {
		tracer().Infof(issue.Error())
	}
}

// Issues returns all recorded findings in order.
func (l *IssueLog) Issues() []Issue {
	return l.issues
}

// Warnings returns the warning-level findings in order.
func (l *IssueLog) Warnings() []Issue {
	var warnings []Issue
	for _, issue := range l.issues {
		if issue.Severity == SeverityWarning {
			warnings = append(warnings, issue)
		}
	}
	return warnings
}

// HasWarnings reports whether any warning-level finding has been recorded.
func (l *IssueLog) HasWarnings() bool {
	for _, issue := range l.issues {
		if issue.Severity == SeverityWarning {
			return true
		}
	}
	return false
}
