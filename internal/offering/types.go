package offering

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	// SharePrice face value of one share (USD)
	SharePrice = decimal.RequireFromString("0.30")
	// MinimumInvestment smallest amount the intake form accepts
	MinimumInvestment = decimal.RequireFromString("999.90")
	// DefaultAmount amount preselected when a new form is opened
	DefaultAmount = decimal.NewFromInt(99500)
)

// EffectivePricePlaces effective price is rounded half away from zero to this many places.
const EffectivePricePlaces int32 = 4

// MaxTotalShares largest share count Calculate returns. Amounts buying more are rejected
// with ErrInvalidArgument; under the 150% accredited bonus that is about $1.1e18.
const MaxTotalShares int64 = math.MaxInt64

// ========================================================

// InvestmentTier one bonus bracket of a tier table
type InvestmentTier struct {
	Threshold       decimal.Decimal `json:"threshold"`       // minimum amount (inclusive)
	BonusPercentage int             `json:"bonusPercentage"` // bonus shares as % of base shares
	Label           string          `json:"label"`
}

// ========================================================

// InvestmentCalculation result of Calculate, never mutated after creation.
type InvestmentCalculation struct {
	BaseShares      int64           `json:"baseShares"`
	BonusShares     int64           `json:"bonusShares"`
	TotalShares     int64           `json:"totalShares"`
	EffectivePrice  decimal.Decimal `json:"effectivePrice"`
	BonusPercentage int             `json:"bonusPercentage"`
	TotalInvestment decimal.Decimal `json:"totalInvestment"`
}

// Equal reports whether two calculations carry identical figures.
func (c InvestmentCalculation) Equal(other InvestmentCalculation) bool {
	return c.BaseShares == other.BaseShares &&
		c.BonusShares == other.BonusShares &&
		c.TotalShares == other.TotalShares &&
		c.BonusPercentage == other.BonusPercentage &&
		c.EffectivePrice.Equal(other.EffectivePrice) &&
		c.TotalInvestment.Equal(other.TotalInvestment)
}

// GetDisplayInfo (for display)
func (c InvestmentCalculation) GetDisplayInfo() map[string]interface{} {
	return map[string]interface{}{
		"total_investment": FormatCurrency(c.TotalInvestment),
		"base_shares":      FormatNumber(c.BaseShares),
		"bonus_shares":     FormatNumber(c.BonusShares),
		"total_shares":     FormatNumber(c.TotalShares),
		"bonus_percentage": c.BonusPercentage,
		"effective_price":  FormatCurrency(c.EffectivePrice),
		"share_price":      FormatCurrency(SharePrice),
	}
}
