package pricing

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// FormatCents renders a minor-unit amount as a two-decimal string. Amounts
// stay in integer cents everywhere inside the service; this is the only
// place they become decimal text.
func FormatCents(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}

// Humanize turns an enum value like "extra-long" or "french-tip" into a
// display label ("Extra Long", "French Tip").
func Humanize(value string) string {
	value = strings.NewReplacer("-", " ", "_", " ").Replace(value)
	return titleCaser.String(value)
}

// Display renders the customer-facing amount text for a line item: the
// two-decimal price, "Included" for zero-cost selections, or "Quote required"
// for items a reviewer must price by hand.
func (li LineItem) Display() string {
	if li.QuoteRequired {
		return "Quote required"
	}
	if li.AmountCents == 0 {
		return "Included"
	}
	return FormatCents(li.AmountCents)
}
