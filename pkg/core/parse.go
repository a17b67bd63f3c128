package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	shortHexRe = regexp.MustCompile(`(?i)^#([\da-f])([\da-f])([\da-f])$`)
	longHexRe  = regexp.MustCompile(`(?i)^#([\da-f]{2})([\da-f]{2})([\da-f]{2})$`)
	rgbFuncRe  = regexp.MustCompile(`^rgb\((\d{1,3}),(\d{1,3}),(\d{1,3})\)$`)
)

// ParseColor parses a color from its textual forms: "#rgb", "#rrggbb" or
// "rgb(r,g,b)". Whitespace is ignored. Malformed input is rejected with a
// descriptive error, never silently defaulted.
func ParseColor(s string) (Color, error) {
	compact := strings.ReplaceAll(s, " ", "")

	if m := shortHexRe.FindStringSubmatch(compact); m != nil {
		r, _ := strconv.ParseUint(m[1], 16, 8)
		g, _ := strconv.ParseUint(m[2], 16, 8)
		b, _ := strconv.ParseUint(m[3], 16, 8)
		// #abc is shorthand for #aabbcc
		return Color{uint8(r * 0x11), uint8(g * 0x11), uint8(b * 0x11)}, nil
	}

	if m := longHexRe.FindStringSubmatch(compact); m != nil {
		r, _ := strconv.ParseUint(m[1], 16, 8)
		g, _ := strconv.ParseUint(m[2], 16, 8)
		b, _ := strconv.ParseUint(m[3], 16, 8)
		return Color{uint8(r), uint8(g), uint8(b)}, nil
	}

	if m := rgbFuncRe.FindStringSubmatch(compact); m != nil {
		channels := [3]uint8{}
		for i, digits := range m[1:] {
			value, err := strconv.ParseUint(digits, 10, 8)
			if err != nil {
				return Color{}, fmt.Errorf("error parsing color from string %q: channel %s out of range", s, digits)
			}
			channels[i] = uint8(value)
		}
		return Color{channels[0], channels[1], channels[2]}, nil
	}

	return Color{}, fmt.Errorf("error parsing color from string %q", s)
}
