package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var en = message.NewPrinter(language.English)

func Numberify(value int64) string {
	return en.Sprintf("%d", value)
}

func Decimalify(value decimal.Decimal) string {
	return en.Sprintf("%.2f", value.InexactFloat64())
}
