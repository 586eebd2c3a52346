package pipeline

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"jaipur-auction-scraper/models"
)

// numberRegexp captures the first integer-or-decimal token in a price
// fragment once currency markers are stripped.
var numberRegexp = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseMoney extracts a currency amount in whole rupees from free text.
// Locale markers (₹, "Rs.", lakh-style comma grouping) are stripped
// first; the fractional part is truncated. Returns nil when the text
// holds no numeric token at all.
func ParseMoney(text string) *int64 {
	t := normLower(text)
	t = strings.ReplaceAll(t, ",", "")
	t = strings.ReplaceAll(t, "₹", "")
	t = strings.ReplaceAll(t, "rs.", "")

	m := numberRegexp.FindString(t)
	if m == "" {
		return nil
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	v := int64(f)
	return &v
}

// ParseDateTime parses a free-text auction date/time fragment. Numeric
// dates are ambiguous on these portals, so day-before-month wins (the
// regional convention). Result is truncated to minute precision; nil on
// anything unparseable.
func ParseDateTime(text string) *time.Time {
	t := Normalize(text)
	if t == "" {
		return nil
	}
	parsed, err := dateparse.ParseAny(t, dateparse.PreferMonthFirst(false))
	if err != nil {
		return nil
	}
	v := parsed.Truncate(time.Minute)
	return &v
}

// typeRule pairs a keyword group with the category it implies. Rules are
// evaluated in order and the first group with any keyword present wins,
// so the specific flat/house/commercial groups must precede the generic
// "land" catch-all ("industrial land" is Commercial, not Land).
type typeRule struct {
	keywords []string
	result   models.PropertyType
}

var typeRules = []typeRule{
	{[]string{"flat", "apartment"}, models.TypeFlat},
	{[]string{"plot"}, models.TypePlot},
	{[]string{"villa", "house", "independent"}, models.TypeHouse},
	{[]string{"shop", "showroom", "office", "commercial", "industrial", "warehouse", "godown"}, models.TypeCommercial},
	{[]string{"land"}, models.TypeLand},
}

// ClassifyPropertyType classifies a listing title into the closed
// property-type set. Unrecognized titles fall back to the generic
// Property category.
func ClassifyPropertyType(title string) models.PropertyType {
	t := normLower(title)
	for _, rule := range typeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.result
			}
		}
	}
	return models.TypeProperty
}

// bankNames is the fixed priority list of lender names and common
// abbreviations. Full names precede the shorter names they contain
// ("State Bank of India" before "Bank of India"), so the first match is
// the most specific one.
var bankNames = []string{
	"SBI", "State Bank of India", "HDFC", "ICICI", "Axis",
	"Punjab National Bank", "PNB", "Bank of Baroda", "Canara Bank",
	"Union Bank", "IDBI", "Kotak", "Indian Bank", "UCO Bank",
	"Bank of India", "Central Bank of India",
}

var bankRegexps = compileBankRegexps()

func compileBankRegexps() []*regexp.Regexp {
	rs := make([]*regexp.Regexp, len(bankNames))
	for i, name := range bankNames {
		rs[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
	}
	return rs
}

// DetectBank scans the supplied texts for a known lender mention,
// matching whole words case-insensitively. Returns the canonical name of
// the first lender in the priority list that appears, or "" if none do.
func DetectBank(texts ...string) string {
	parts := make([]string, 0, len(texts))
	for _, t := range texts {
		if t != "" {
			parts = append(parts, Normalize(t))
		}
	}
	blob := strings.Join(parts, " ")
	for i, re := range bankRegexps {
		if re.MatchString(blob) {
			return bankNames[i]
		}
	}
	return ""
}
