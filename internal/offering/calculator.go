package offering

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidArgument returned for amounts the engine cannot price (negative, or too
// large for the share counts to fit in int64).
var ErrInvalidArgument = errors.New("invalid argument")

var (
	hundred   = decimal.NewFromInt(100)
	maxShares = decimal.NewFromInt(MaxTotalShares)
)

// Calculate derive the bonus-share allocation for an investment amount.
// Pure function: safe for concurrent use, same input always gives the same output.
func Calculate(amount decimal.Decimal, accredited bool) (InvestmentCalculation, error) {
	if err := checkAmount(amount); err != nil {
		return InvestmentCalculation{}, err
	}

	bonusPercentage := 0
	if tier, ok := qualifyingTier(amount, tierTable(accredited)); ok {
		bonusPercentage = tier.BonusPercentage
	}

	// base = floor(amount / share price), QuoRem truncates exactly (amount >= 0)
	baseQuo, _ := amount.QuoRem(SharePrice, 0)
	// bonus = floor(base * pct / 100)
	bonusQuo, _ := baseQuo.Mul(decimal.NewFromInt(int64(bonusPercentage))).QuoRem(hundred, 0)
	totalQuo := baseQuo.Add(bonusQuo)
	if totalQuo.GreaterThan(maxShares) {
		return InvestmentCalculation{}, fmt.Errorf("%w: amount %s exceeds representable share count", ErrInvalidArgument, amount)
	}
	baseShares := baseQuo.IntPart()
	bonusShares := bonusQuo.IntPart()
	totalShares := totalQuo.IntPart()

	effectivePrice := SharePrice
	if totalShares > 0 {
		effectivePrice = amount.DivRound(decimal.NewFromInt(totalShares), EffectivePricePlaces)
	}

	return InvestmentCalculation{
		BaseShares:      baseShares,
		BonusShares:     bonusShares,
		TotalShares:     totalShares,
		EffectivePrice:  effectivePrice.Round(EffectivePricePlaces),
		BonusPercentage: bonusPercentage,
		TotalInvestment: amount,
	}, nil
}

// ResolveTier return the tier that produced the bonus for amount.
// Amounts below every threshold resolve to the first tier of the table.
func ResolveTier(amount decimal.Decimal, accredited bool) (InvestmentTier, error) {
	if err := checkAmount(amount); err != nil {
		return InvestmentTier{}, err
	}

	table := tierTable(accredited)
	if tier, ok := qualifyingTier(amount, table); ok {
		return tier, nil
	}
	return table[0], nil
}

// --------------------------------------------------------------------------------------------
// private func
// --------------------------------------------------------------------------------------------

func checkAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount %s is negative", ErrInvalidArgument, amount)
	}
	return nil
}

// qualifyingTier last tier (ascending) whose threshold <= amount
func qualifyingTier(amount decimal.Decimal, table []InvestmentTier) (InvestmentTier, bool) {
	var (
		selected InvestmentTier
		found    bool
	)
	for _, tier := range table {
		if amount.GreaterThanOrEqual(tier.Threshold) {
			selected = tier
			found = true
		}
	}
	return selected, found
}
