package api

import "github.com/iris-tg/iris-cli/internal/validation"

// Currency selects one of the three pocket currencies.
type Currency string

const (
	CurrencyGold        Currency = "gold"
	CurrencySweets      Currency = "sweets"
	CurrencyDonateScore Currency = "donate_score"
)

// Currencies lists every known currency, in display order.
func Currencies() []Currency {
	return []Currency{CurrencyGold, CurrencySweets, CurrencyDonateScore}
}

func (c Currency) String() string {
	return string(c)
}

// historyPath returns the history endpoint for the currency, or a validation
// error for an unknown selector.
func (c Currency) historyPath() (string, error) {
	switch c {
	case CurrencySweets:
		return "pocket/sweets/history", nil
	case CurrencyGold:
		return "pocket/gold/history", nil
	case CurrencyDonateScore:
		return "pocket/donate_score/history", nil
	default:
		return "", &validation.Error{Field: "currency", Reason: "unknown currency " + string(c)}
	}
}

// giveTag returns the deep-link action tag for gifting the currency.
func (c Currency) giveTag() (string, error) {
	switch c {
	case CurrencyGold:
		return "givegold_bot", nil
	case CurrencySweets:
		return "give_bot", nil
	case CurrencyDonateScore:
		return "givedonate_score_bot", nil
	default:
		return "", &validation.Error{Field: "currency", Reason: "unknown currency " + string(c)}
	}
}
