package models

// PricingTier is display material only: Rate stays a free-text string
// ("₹4,800 / night") and is never used in price calculations.
type PricingTier struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Rate     string   `json:"rate"`
	Includes []string `json:"includes"`
}
