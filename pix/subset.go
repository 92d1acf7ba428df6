package pix

import (
	"fmt"
	"strconv"
	"strings"
)

// Subset is a set of character codes given as comma-separated codes or
// inclusive ranges, e.g. "0x20-0x7e,0xa0-0x17f,0x2116". The zero value (or
// an empty specification) matches every code.
type Subset struct {
	ranges []codeRange
}

type codeRange struct {
	lo, hi rune
}

// ParseSubset parses a subset specification. Numbers accept any base
// recognized by Go literal syntax (0x…, 0o…, plain decimal).
func ParseSubset(spec string) (Subset, error) {
	var s Subset
	if spec == "" {
		return s, nil
	}
	for _, token := range strings.Split(spec, ",") {
		lo, hi, found := strings.Cut(token, "-")
		loCode, err := parseCode(lo)
		if err != nil {
			return Subset{}, fmt.Errorf("subset %q: %v", token, err)
		}
		hiCode := loCode
		if found {
			if hiCode, err = parseCode(hi); err != nil {
				return Subset{}, fmt.Errorf("subset %q: %v", token, err)
			}
		}
		s.ranges = append(s.ranges, codeRange{lo: loCode, hi: hiCode})
	}
	return s, nil
}

func parseCode(text string) (rune, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(text), 0, 32)
	if err != nil {
		return 0, err
	}
	return rune(v), nil
}

// Match reports whether a character code belongs to the subset.
func (s Subset) Match(code rune) bool {
	if len(s.ranges) == 0 {
		return true
	}
	for _, r := range s.ranges {
		if code >= r.lo && code <= r.hi {
			return true
		}
	}
	return false
}
