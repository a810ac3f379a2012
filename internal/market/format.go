package market

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// usPrinter groups numbers with en-US thousands separators, matching the
// locale the original dashboard rendered with.
var usPrinter = message.NewPrinter(language.English)

// FormatPrice renders a USD price with thousands separators and 2 to 6
// fraction digits: enough precision for sub-cent coins, trimmed so large
// prices stay readable.
func FormatPrice(v float64) string {
	s := usPrinter.Sprintf("%.6f", v)
	return trimFraction(s, 2)
}

// FormatMarketCap renders a market cap with T/B/M magnitude suffixes at
// two decimals, falling back to a locale-grouped number below 1e6.
func FormatMarketCap(v float64) string {
	return formatMagnitude(v, false)
}

// FormatVolume renders a 24h volume like FormatMarketCap but with an
// additional K suffix at 1e3.
func FormatVolume(v float64) string {
	return formatMagnitude(v, true)
}

func formatMagnitude(v float64, withK bool) string {
	switch {
	case v >= 1e12:
		return fmt.Sprintf("%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case withK && v >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	}
	if v == math.Trunc(v) {
		return usPrinter.Sprintf("%d", int64(v))
	}
	return usPrinter.Sprintf("%.2f", v)
}

// FormatChange renders a 24h percentage change at two decimals. In
// signed contexts (the movers panels) non-negative values get a leading
// "+". An absent change renders as "n/a".
func FormatChange(change *float64, signed bool) string {
	if change == nil {
		return "n/a"
	}
	if signed {
		return fmt.Sprintf("%+.2f%%", *change)
	}
	return fmt.Sprintf("%.2f%%", *change)
}

// ChangeDirection classifies a 24h change for styling: "up" for
// non-negative, "down" for negative. An absent change counts as down,
// consistent with how it sorts in the movers ordering.
func ChangeDirection(change *float64) string {
	if change == nil || *change < 0 {
		return "down"
	}
	return "up"
}

// trimFraction drops trailing zeros from the fraction part of a
// formatted number, keeping at least min digits.
func trimFraction(s string, min int) string {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}
	end := len(s)
	for end > dot+1+min && s[end-1] == '0' {
		end--
	}
	return s[:end]
}
