package catalog

import (
	"fmt"
	"strings"
)

// Currency is the bucket a cost is paid from
type Currency string

const (
	// CurrencyDucats is the standard spendable currency
	CurrencyDucats Currency = "ducats"
	// CurrencyGlory is the capped prestige currency
	CurrencyGlory Currency = "glory"
)

// gloryPrefixes mark a currency label as prestige. The Russian catalog
// writes "очков славы" / "очко славы", the English one "glory points".
var gloryPrefixes = []string{"очко", "очки", "glory"}

// ParseCurrency classifies a free-form currency label. Anything that does
// not start with a prestige prefix is ducats.
func ParseCurrency(label string) Currency {
	normalized := strings.ToLower(strings.TrimSpace(label))
	for _, prefix := range gloryPrefixes {
		if strings.HasPrefix(normalized, prefix) {
			return CurrencyGlory
		}
	}
	return CurrencyDucats
}

// Cost is an amount in a single currency
type Cost struct {
	Amount   int      `json:"amount" yaml:"amount"`
	Currency Currency `json:"currency" yaml:"currency"`
}

// Ducats is shorthand for a standard-currency cost
func Ducats(amount int) Cost {
	return Cost{Amount: amount, Currency: CurrencyDucats}
}

// Glory is shorthand for a prestige-currency cost
func Glory(amount int) Cost {
	return Cost{Amount: amount, Currency: CurrencyGlory}
}

// IsGlory reports whether the cost is paid in glory
func (c Cost) IsGlory() bool {
	return c.Currency == CurrencyGlory
}

// Split returns the cost as (ducats, glory) with zero in the unused column
func (c Cost) Split() (ducats, glory int) {
	if c.IsGlory() {
		return 0, c.Amount
	}
	return c.Amount, 0
}

func (c Cost) String() string {
	return fmt.Sprintf("%d %s", c.Amount, c.Currency)
}
