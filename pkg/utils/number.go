package utils

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// currencyPrinter agrupa milhares no padrão americano (1,300,000.00)
var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatNumber formata com duas casas decimais, sem separador de milhar (ex: 2.50)
func FormatNumber(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// FormatCurrency formata valores monetários com separador de milhar (ex: $1,300,000.00)
func FormatCurrency(f float64) string {
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	return sign + "$" + currencyPrinter.Sprintf("%.2f", f)
}
