// Package money converts and formats donation amounts.
//
// Amounts travel through the application as decimal values in major units
// (naira, dollars). The gateway speaks integer minor units (kobo, cents),
// and the conversion between the two happens only here.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is a currency the gateway accepts for donations.
type Currency struct {
	Code  string
	Label string
}

// SupportedCurrencies lists the currencies offered on the donation form.
var SupportedCurrencies = []Currency{
	{Code: "NGN", Label: "₦ Nigerian Naira"},
	{Code: "USD", Label: "$ US Dollar"},
	{Code: "GHS", Label: "GH₵ Ghanaian Cedi"},
	{Code: "ZAR", Label: "R South African Rand"},
	{Code: "KES", Label: "KSh Kenyan Shilling"},
}

var symbols = map[string]string{
	"NGN": "₦",
	"USD": "$",
	"GHS": "GH₵",
	"ZAR": "R",
	"KES": "KSh",
	"EUR": "€",
	"GBP": "£",
}

// minimums holds the smallest donation accepted per currency, in major
// units.
var minimums = map[string]decimal.Decimal{
	"NGN": decimal.NewFromInt(100),
	"USD": decimal.NewFromInt(1),
	"GHS": decimal.NewFromInt(1),
	"ZAR": decimal.NewFromInt(1),
	"KES": decimal.NewFromInt(10),
}

var minorFactor = decimal.NewFromInt(100)

var printer = message.NewPrinter(language.English)

// IsSupported reports whether code is one of SupportedCurrencies.
func IsSupported(code string) bool {
	_, ok := minimums[strings.ToUpper(code)]
	return ok
}

// Minimum returns the smallest accepted donation for code.
func Minimum(code string) (decimal.Decimal, bool) {
	m, ok := minimums[strings.ToUpper(code)]
	return m, ok
}

// Symbol returns the display symbol for code, or the code itself when no
// symbol is known.
func Symbol(code string) string {
	if s, ok := symbols[strings.ToUpper(code)]; ok {
		return s
	}
	return code
}

// ToMinorUnits converts a major-unit amount to the gateway's integer
// representation. Fractions of a minor unit are truncated.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorFactor).IntPart()
}

// FromMinorUnits converts a gateway integer amount back to major units.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// Format renders amount with the currency symbol and grouped thousands,
// e.g. ₦5,000.00.
func Format(amount decimal.Decimal, currency string) string {
	f, _ := amount.Round(2).Float64()
	return Symbol(currency) + printer.Sprintf("%.2f", f)
}

// FormatPercentage renders v with the given number of decimals and a
// trailing percent sign.
func FormatPercentage(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%.*f%%", decimals, v)
}

var (
	ngnFeeRate  = decimal.RequireFromString("0.015")
	ngnFlatFee  = decimal.NewFromInt(100)
	ngnFeeCap   = decimal.NewFromInt(2000)
	intlFeeRate = decimal.RequireFromString("0.039")
)

// EstimateFee approximates the gateway's processing fee for a donation.
// Local NGN payments cost 1.5% + ₦100 capped at ₦2,000; everything else is
// charged 3.9%.
func EstimateFee(amount decimal.Decimal, currency string) decimal.Decimal {
	if strings.EqualFold(currency, "NGN") {
		return decimal.Min(amount.Mul(ngnFeeRate).Add(ngnFlatFee), ngnFeeCap)
	}
	return amount.Mul(intlFeeRate)
}
