package invoice

import (
	"fmt"

	"github.com/divan/num2words"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// Compute splits amount, the final price paid after tax and discount, back
// into subtotal and tax.
//
//	subtotal = (amount + discount) / (1 + rate/100)
//
// Subtotal and tax are rounded to whole units. CGST and SGST are each half of
// the unrounded tax rounded to 2 places, so their sum can be 0.01 away from
// the rounded tax.
func Compute(amount, taxRate, discount decimal.Decimal) Breakdown {
	divisor := decimal.NewFromInt(1).Add(taxRate.Div(hundred))
	subtotal := amount.Add(discount).DivRound(divisor, 16)
	tax := subtotal.Mul(taxRate).Div(hundred)
	half := tax.Div(two)

	return Breakdown{
		Subtotal:    subtotal.Round(0),
		TaxRate:     taxRate,
		TaxAmount:   tax.Round(0),
		CGST:        half.Round(2),
		SGST:        half.Round(2),
		Discount:    discount,
		TotalAmount: amount,
	}
}

// AmountInWords spells out amount in whole units with the fractional part as
// paise.
func AmountInWords(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	units := rounded.IntPart()
	paise := rounded.Sub(decimal.NewFromInt(units)).Mul(hundred).IntPart()

	words := num2words.Convert(int(units))
	if paise == 0 {
		return words + " only"
	}
	return fmt.Sprintf("%s and %s paise only", words, num2words.Convert(int(paise)))
}
