package offering

import (
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed tiers.yaml
var tiersYAML []byte

var (
	nonAccreditedTiers []InvestmentTier
	accreditedTiers    []InvestmentTier
)

func init() {
	nonAccredited, accredited, err := ParseTierTables(tiersYAML)
	if err != nil {
		panic(fmt.Sprintf("offering: invalid tier tables: %v", err))
	}
	nonAccreditedTiers = nonAccredited
	accreditedTiers = accredited
}

type tierRecord struct {
	Threshold       string `yaml:"threshold"`
	BonusPercentage int    `yaml:"bonus_percentage"`
	Label           string `yaml:"label"`
}

type tierDocument struct {
	NonAccredited []tierRecord `yaml:"non_accredited"`
	Accredited    []tierRecord `yaml:"accredited"`
}

// ParseTierTables decode both tier tables and check their ordering.
func ParseTierTables(data []byte) (nonAccredited, accredited []InvestmentTier, err error) {
	var doc tierDocument
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse tier tables: %w", err)
	}

	if nonAccredited, err = buildTable("non_accredited", doc.NonAccredited); err != nil {
		return nil, nil, err
	}
	if accredited, err = buildTable("accredited", doc.Accredited); err != nil {
		return nil, nil, err
	}
	return nonAccredited, accredited, nil
}

// Tiers return a copy of the tier table selected by accreditation.
func Tiers(accredited bool) []InvestmentTier {
	table := tierTable(accredited)
	out := make([]InvestmentTier, len(table))
	copy(out, table)
	return out
}

// --------------------------------------------------------------------------------------------
// private func
// --------------------------------------------------------------------------------------------

func tierTable(accredited bool) []InvestmentTier {
	if accredited {
		return accreditedTiers
	}
	return nonAccreditedTiers
}

// buildTable thresholds must be strictly ascending and bonuses non-decreasing,
// the "last qualifying tier" scan depends on it.
func buildTable(name string, records []tierRecord) ([]InvestmentTier, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("tier table %s is empty", name)
	}

	table := make([]InvestmentTier, 0, len(records))
	for i, r := range records {
		threshold, err := decimal.NewFromString(r.Threshold)
		if err != nil {
			return nil, fmt.Errorf("tier table %s[%d]: bad threshold %q: %w", name, i, r.Threshold, err)
		}
		if threshold.IsNegative() {
			return nil, fmt.Errorf("tier table %s[%d]: threshold %s is negative", name, i, threshold)
		}
		if r.BonusPercentage < 0 {
			return nil, fmt.Errorf("tier table %s[%d]: bonus percentage %d is negative", name, i, r.BonusPercentage)
		}
		if r.Label == "" {
			return nil, fmt.Errorf("tier table %s[%d]: missing label", name, i)
		}
		if i > 0 {
			prev := table[i-1]
			if !threshold.GreaterThan(prev.Threshold) {
				return nil, fmt.Errorf("tier table %s[%d]: threshold %s not above %s", name, i, threshold, prev.Threshold)
			}
			if r.BonusPercentage < prev.BonusPercentage {
				return nil, fmt.Errorf("tier table %s[%d]: bonus %d%% below previous %d%%", name, i, r.BonusPercentage, prev.BonusPercentage)
			}
		}
		table = append(table, InvestmentTier{
			Threshold:       threshold,
			BonusPercentage: r.BonusPercentage,
			Label:           r.Label,
		})
	}
	return table, nil
}
