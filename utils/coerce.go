package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Placeholder is what the extraction model writes for a missing value.
const Placeholder = "N/A"

var (
	leadingNumberRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	currencyRegex      = regexp.MustCompile(`(?i)^(₹|rs\.?|inr)\s*`)
)

// CoerceAmount converts a loosely-typed amount into a float.
// Strings are parsed from their leading number after dropping a currency
// marker and thousands separators, so "₹1,200.50 Dr" becomes 1200.5.
// Anything unparseable is 0.
func CoerceAmount(v any) float64 {
	switch a := v.(type) {
	case float64:
		return a
	case json.Number:
		f, err := a.Float64()
		if err != nil {
			return 0
		}
		return f
	case int:
		return float64(a)
	case int64:
		return float64(a)
	case string:
		return parseAmount(a)
	default:
		return 0
	}
}

func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], strings.TrimSpace(s[1:])
	}
	s = currencyRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ",", "")

	m := leadingNumberRegex.FindString(sign + s)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

// CoerceString returns the trimmed text of v, or "" for nil and the placeholder.
func CoerceString(v any) string {
	var s string
	switch a := v.(type) {
	case nil:
		return ""
	case string:
		s = a
	case json.Number:
		s = a.String()
	default:
		s = fmt.Sprint(a)
	}
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, Placeholder) {
		return ""
	}
	return s
}

var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"02/01/06",
	"02-Jan-2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// ParseDate accepts the date layouts Indian statements commonly use.
// Day-first layouts are tried before month-first ones.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range dateFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unknown date format: %q", dateStr)
}
