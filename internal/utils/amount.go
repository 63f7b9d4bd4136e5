package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var groupedThousandsPattern = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// ParseTurkishAmount parses a money amount written the Turkish way, where "."
// groups thousands and "," marks decimals: "15.000", "15.000,50" and "15000"
// are all accepted. Currency markers (TL, ₺) are ignored.
func ParseTurkishAmount(input string) (float64, bool) {
	s := strings.TrimSpace(input)
	s = strings.TrimSuffix(s, "TL")
	s = strings.TrimSuffix(s, "TRY")
	s = strings.Trim(s, "₺ ")
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return 0, false
	}

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case groupedThousandsPattern.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
