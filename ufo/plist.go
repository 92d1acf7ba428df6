package ufo

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
)

// plist values are built from a small set of Go types: string, int, float64,
// bool, []any and dict. Only the subset of the property-list format the UFO
// files need is implemented.

type dict map[string]any

const plistHeader = xml.Header +
	`<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">` + "\n"

func writePlist(w io.Writer, root any) error {
	if _, err := io.WriteString(w, plistHeader); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<plist version=\"1.0\">\n"); err != nil {
		return err
	}
	if err := writePlistValue(w, root, 1); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</plist>\n")
	return err
}

func writePlistValue(w io.Writer, v any, depth int) error {
	indent := strings.Repeat("  ", depth)
	switch value := v.(type) {
	case string:
		var sb strings.Builder
		xml.EscapeText(&sb, []byte(value))
		_, err := fmt.Fprintf(w, "%s<string>%s</string>\n", indent, sb.String())
		return err
	case int:
		_, err := fmt.Fprintf(w, "%s<integer>%d</integer>\n", indent, value)
		return err
	case float64:
		_, err := fmt.Fprintf(w, "%s<real>%g</real>\n", indent, value)
		return err
	case bool:
		if value {
			_, err := fmt.Fprintf(w, "%s<true/>\n", indent)
			return err
		}
		_, err := fmt.Fprintf(w, "%s<false/>\n", indent)
		return err
	case []any:
		if _, err := fmt.Fprintf(w, "%s<array>\n", indent); err != nil {
			return err
		}
		for _, item := range value {
			if err := writePlistValue(w, item, depth+1); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s</array>\n", indent)
		return err
	case []int:
		items := make([]any, len(value))
		for i, n := range value {
			items[i] = n
		}
		return writePlistValue(w, items, depth)
	case dict:
		if _, err := fmt.Fprintf(w, "%s<dict>\n", indent); err != nil {
			return err
		}
		keys := make([]string, 0, len(value))
		for k := range value {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			var sb strings.Builder
			xml.EscapeText(&sb, []byte(k))
			if _, err := fmt.Fprintf(w, "%s  <key>%s</key>\n", indent, sb.String()); err != nil {
				return err
			}
			if err := writePlistValue(w, value[k], depth+1); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s</dict>\n", indent)
		return err
	}
	return fmt.Errorf("property list: unsupported value type %T", v)
}
