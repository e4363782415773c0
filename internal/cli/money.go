package cli

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// displayCurrency is a formatting concern only; the ledger itself is
// currency-agnostic.
const displayCurrency = money.USD

// FormatAmount renders a decimal amount as a currency string, e.g. $1,234.50.
func FormatAmount(amount decimal.Decimal) string {
	cents := amount.Shift(2).Round(0).IntPart()
	return money.New(cents, displayCurrency).Display()
}

// FormatSignedAmount renders an amount with a leading sign and color:
// green for credits, red for debits.
func FormatSignedAmount(amount decimal.Decimal, credit bool) string {
	if credit {
		return AmountPositiveStyle.Render("+" + FormatAmount(amount))
	}
	return AmountNegativeStyle.Render("-" + FormatAmount(amount))
}
