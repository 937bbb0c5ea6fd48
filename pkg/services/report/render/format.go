package render

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// money formats a currency value with a glyph prefix, thousands grouping
// and exactly two decimals, e.g. "$12,345.00".
func money(v float64) string {
	return "$" + printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// percent renders part/base*100 with the given number of decimals.
// A zero base always yields "0%", never NaN or Inf.
func percent(part, base float64, decimals int) string {
	if base == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.*f%%", decimals, part/base*100)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func monthName(month int) string {
	return time.Month(month).String()
}

// truncate caps cell text at max characters, never splitting a
// multi-byte rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// orDefault substitutes fallback for an empty string.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
