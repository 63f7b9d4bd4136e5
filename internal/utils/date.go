package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const isoDateLayout = "2006-01-02"

var (
	dateDelimiterPattern = regexp.MustCompile(`[/.]`)
	isoDatePattern       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ConvertDateFormat turns "DD/MM/YYYY" or "DD.MM.YYYY" into "YYYY-MM-DD",
// zero-padding day and month. Input that does not split into exactly three
// "/" or "." separated segments yields "".
func ConvertDateFormat(date string) string {
	parts := dateDelimiterPattern.Split(strings.TrimSpace(date), -1)
	if len(parts) != 3 {
		return ""
	}
	day, month, year := parts[0], parts[1], parts[2]
	if day == "" || month == "" || year == "" {
		return ""
	}

	return year + "-" + zeroPad(month) + "-" + zeroPad(day)
}

// NormalizeDate accepts an ISO date or a dotted/slashed Turkish date and
// returns a validated ISO date.
func NormalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if !isoDatePattern.MatchString(date) {
		date = ConvertDateFormat(date)
	}

	parsed, err := time.Parse(isoDateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	return parsed.Format(isoDateLayout), nil
}

// MonthsBetween returns the contract duration in whole calendar months
// between two ISO dates, counting only year and month.
func MonthsBetween(start, end string) (int, error) {
	s, err := time.Parse(isoDateLayout, start)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, start)
	}
	e, err := time.Parse(isoDateLayout, end)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, end)
	}

	return (e.Year()*12 + int(e.Month())) - (s.Year()*12 + int(s.Month())), nil
}

func zeroPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
