package ufo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteDesignspace writes the designspace document tying the UFO masters of
// a variable font together, plus a fontmake/fontc config.yaml next to it.
// Axis values are emitted as integer percentages, so the fvar axes stay on a
// user-friendly 0..100 scale.
func WriteDesignspace(dir string, info Info, variableAxes []string, instances []Instance) error {
	baseName := FileName(info.FamilyName, info.StyleName)
	designspaceName := baseName + ".designspace"
	tracer().Infof("writing %s", designspaceName)

	var sb strings.Builder
	sb.WriteString("<?xml version='1.0' encoding='UTF-8'?>\n")
	sb.WriteString("<designspace format=\"5.0\">\n")

	sb.WriteString("  <axes>\n")
	for _, tag := range variableAxes {
		a, ok := AxisInfo(tag)
		if !ok {
			return fmt.Errorf("designspace: invalid axis %q", tag)
		}
		fmt.Fprintf(&sb,
			"    <axis tag=%q name=%q minimum=\"%d\" maximum=\"%d\" default=\"%d\"/>\n",
			a.Tag, a.Name, int(100*a.Min), int(100*a.Max), int(100*a.Default))
	}
	sb.WriteString("  </axes>\n")

	sb.WriteString("  <sources>\n")
	for _, master := range Masters(variableAxes, info.StyleName) {
		masterName := FileName(info.FamilyName, master.Name)
		fmt.Fprintf(&sb, "    <source filename=%q name=%q familyname=%q>\n",
			masterName+".ufo", masterName, info.FamilyName)
		writeLocation(&sb, master.Location)
		sb.WriteString("    </source>\n")
	}
	sb.WriteString("  </sources>\n")

	if len(instances) > 0 {
		sb.WriteString("  <instances>\n")
		for _, inst := range instances {
			styleName := strings.TrimSpace(inst.Name + " " + info.StyleName)
			instName := FileName(info.FamilyName, styleName)
			mapFamily, mapStyle := StyleMapNames(info.FamilyName, styleName)
			fmt.Fprintf(&sb,
				"    <instance filename=%q name=%q familyname=%q stylename=%q stylemapfamilyname=%q stylemapstylename=%q>\n",
				instName+".ufo", instName, info.FamilyName, styleName, mapFamily, mapStyle)
			writeLocation(&sb, inst.Location)
			sb.WriteString("    </instance>\n")
		}
		sb.WriteString("  </instances>\n")
	}
	sb.WriteString("</designspace>\n")

	if err := os.WriteFile(filepath.Join(dir, designspaceName), []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("designspace: %w", err)
	}

	var config strings.Builder
	config.WriteString("sources:\n")
	config.WriteString("  - " + designspaceName + "\n")
	if len(variableAxes) > 0 {
		config.WriteString("axisOrder:\n")
		for _, tag := range variableAxes {
			config.WriteString("  - " + tag + "\n")
		}
	}
	configName := baseName + "-config.yaml"
	if err := os.WriteFile(filepath.Join(dir, configName), []byte(config.String()), 0o644); err != nil {
		return fmt.Errorf("designspace: %w", err)
	}
	return nil
}

func writeLocation(sb *strings.Builder, loc Location) {
	sb.WriteString("      <location>\n")
	for _, tag := range AxisTags() {
		v, ok := loc[tag]
		if !ok {
			continue
		}
		a, _ := AxisInfo(tag)
		fmt.Fprintf(sb, "        <dimension name=%q xvalue=\"%d\"/>\n", a.Name, int(100*v))
	}
	sb.WriteString("      </location>\n")
}
