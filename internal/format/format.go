// Package format renders project amounts for display using locale-aware
// number formatting from golang.org/x/text.
package format

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

// symbols maps ISO 4217 codes to the narrow symbol shown before an amount.
// Codes missing here render as "CODE " followed by the amount.
var symbols = map[currency.Unit]string{
	currency.USD: "$",
	currency.EUR: "€",
	currency.GBP: "£",
	currency.JPY: "¥",
	currency.CAD: "CA$",
	currency.AUD: "A$",
	currency.NZD: "NZ$",
	currency.HKD: "HK$",
	currency.MustParseISO("SGD"): "S$",
	currency.MXN: "MX$",
	currency.CHF: "CHF ",
	currency.SEK: "SEK ",
	currency.NOK: "NOK ",
	currency.DKK: "DKK ",
}

// Formatter formats numbers for one locale.
type Formatter struct {
	printer *message.Printer
}

// New returns a Formatter for a BCP 47 locale such as "en-US".
func New(locale string) (*Formatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Formatter{printer: message.NewPrinter(tag)}, nil
}

// Default returns the en-US Formatter.
func Default() *Formatter {
	return &Formatter{printer: message.NewPrinter(language.AmericanEnglish)}
}

// Currency renders a whole-unit amount with thousands separators and the
// symbol for code (e.g. "$15,823"). Unknown or empty codes fall back to USD.
func (f *Formatter) Currency(amount float64, code string) string {
	unit := currency.USD
	if code != "" {
		if u, err := currency.ParseISO(strings.ToUpper(code)); err == nil {
			unit = u
		}
	}
	sym, ok := symbols[unit]
	if !ok {
		sym = unit.String() + " "
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}
	return sign + sym + f.printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
}

// Percent renders a funding percentage with a trailing percent sign
// (e.g. "186%").
func (f *Formatter) Percent(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2))) + "%"
}
