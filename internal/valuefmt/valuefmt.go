// Package valuefmt normalizes the amounts and timestamps returned by the
// wallet API into display strings.
//
// Balances and transaction values arrive with an ambiguous unit: some
// resolvers already convert to ether while others forward the raw wei
// integer. The disambiguation is a single named rule, WeiThreshold: any
// magnitude below it is taken as ether, everything else as wei. Callers
// must go through FormatValue so the rule can be replaced by an explicit
// unit from the API without touching them.
package valuefmt

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// WeiThreshold is the magnitude below which a value is assumed to be
	// already expressed in ether.
	WeiThreshold = 1000

	// Decimals is the number of fractional digits of every formatted amount.
	Decimals = 6

	// Zero is the display value for missing or unparseable amounts.
	Zero = "0.00"

	// UnknownDate is the display value for timestamps that cannot be parsed.
	UnknownDate = "Unknown Date"

	// DisplayLayout is the layout used for every formatted timestamp.
	DisplayLayout = "1/2/2006, 3:04:05 PM"

	// maxInputLength, maxIntegerDigits and maxFractionDigits bound what
	// FormatValue accepts. A uint256 wei amount has 78 digits.
	maxInputLength    = 256
	maxIntegerDigits  = 78
	maxFractionDigits = 78
)

var (
	weiThreshold = decimal.NewFromInt(WeiThreshold)
	weiPerEther  = decimal.New(1, 18)

	epochSeconds = regexp.MustCompile(`^\d+$`)

	// dateLayouts are tried in order for non-numeric timestamps.
	dateLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999Z07:00",
		"2006-01-02 15:04:05",
		"Mon Jan 02 2006 15:04:05 GMT-0700",
		time.RFC1123Z,
		time.RFC1123,
		time.UnixDate,
		time.ANSIC,
		"2006-01-02",
	}
)

// FormatValue renders raw as an ether amount with Decimals fractional digits.
// An empty string stands for a missing value.
//
//	FormatValue("2500000000000000000") == "2.500000"
//	FormatValue("1.5")                 == "1.500000"
//	FormatValue("")                    == "0.00"
func FormatValue(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxInputLength {
		return Zero
	}

	v, err := decimal.NewFromString(raw)
	if err != nil || !inRange(v) {
		return Zero
	}

	if v.Abs().LessThan(weiThreshold) {
		return v.StringFixed(Decimals)
	}

	return v.Div(weiPerEther).StringFixed(Decimals)
}

// inRange rejects values whose exponent would make formatting allocate
// an arbitrarily long string, such as "1e1000000000".
func inRange(v decimal.Decimal) bool {
	exp := int64(v.Exponent())
	if exp < -maxFractionDigits {
		return false
	}
	return int64(v.NumDigits())+exp <= maxIntegerDigits
}

// DisplayBalance prefers the server-formatted balance and falls back to
// FormatValue on the raw one ("0" when missing).
func DisplayBalance(formatted, raw string) string {
	if formatted != "" {
		return formatted
	}

	if raw == "" {
		raw = "0"
	}
	return FormatValue(raw)
}

// ParseTimestamp reads raw as epoch seconds when it is made only of digits,
// otherwise as one of the accepted date layouts.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if epochSeconds.MatchString(raw) {
		secs, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(secs, 0), true
	}

	// Date.toString appends a zone name in parentheses.
	if i := strings.Index(raw, " ("); i > 0 && strings.HasSuffix(raw, ")") {
		raw = raw[:i]
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// FormatTimestamp renders raw in loc using DisplayLayout, or returns
// UnknownDate when it cannot be parsed. A nil loc means time.Local.
func FormatTimestamp(raw string, loc *time.Location) string {
	t, ok := ParseTimestamp(raw)
	if !ok {
		return UnknownDate
	}

	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DisplayLayout)
}
