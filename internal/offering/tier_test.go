package offering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTierTables(t *testing.T) {
	nonAccredited := Tiers(false)
	accredited := Tiers(true)

	require.Len(t, nonAccredited, 6)
	require.Len(t, accredited, 7)

	assert.True(t, nonAccredited[0].Threshold.Equal(MinimumInvestment))
	assert.Equal(t, "MEMBER", nonAccredited[0].Label)
	assert.Equal(t, "SOVEREIGN", accredited[len(accredited)-1].Label)

	// accredited table starts higher
	assert.True(t, accredited[0].Threshold.GreaterThan(nonAccredited[0].Threshold))
}

func TestTiersReturnsCopy(t *testing.T) {
	tiers := Tiers(false)
	tiers[0].Label = "CHANGED"
	tiers[0].BonusPercentage = 99

	fresh := Tiers(false)
	assert.Equal(t, "MEMBER", fresh[0].Label)
	assert.Equal(t, 5, fresh[0].BonusPercentage)
}

func TestParseTierTables(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		doc := []byte(`
non_accredited:
  - {threshold: "100", bonus_percentage: 1, label: A}
  - {threshold: "200.50", bonus_percentage: 2, label: B}
accredited:
  - {threshold: "1000", bonus_percentage: 5, label: C}
`)
		nonAcc, acc, err := ParseTierTables(doc)
		require.NoError(t, err)
		require.Len(t, nonAcc, 2)
		require.Len(t, acc, 1)
		assert.True(t, nonAcc[1].Threshold.Equal(d("200.5")))
		assert.Equal(t, "C", acc[0].Label)
	})

	t.Run("OutOfOrder", func(t *testing.T) {
		doc := []byte(`
non_accredited:
  - {threshold: "200", bonus_percentage: 1, label: A}
  - {threshold: "100", bonus_percentage: 2, label: B}
accredited:
  - {threshold: "1000", bonus_percentage: 5, label: C}
`)
		_, _, err := ParseTierTables(doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not above")
	})

	t.Run("DuplicateThreshold", func(t *testing.T) {
		doc := []byte(`
non_accredited:
  - {threshold: "100", bonus_percentage: 1, label: A}
  - {threshold: "100", bonus_percentage: 2, label: B}
accredited:
  - {threshold: "1000", bonus_percentage: 5, label: C}
`)
		_, _, err := ParseTierTables(doc)
		assert.Error(t, err)
	})

	t.Run("DecreasingBonus", func(t *testing.T) {
		doc := []byte(`
non_accredited:
  - {threshold: "100", bonus_percentage: 10, label: A}
accredited:
  - {threshold: "1000", bonus_percentage: 5, label: B}
  - {threshold: "2000", bonus_percentage: 4, label: C}
`)
		_, _, err := ParseTierTables(doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "below previous")
	})

	t.Run("EmptyTable", func(t *testing.T) {
		doc := []byte(`
non_accredited:
  - {threshold: "100", bonus_percentage: 1, label: A}
accredited: []
`)
		_, _, err := ParseTierTables(doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "accredited is empty")
	})

	t.Run("BadThreshold", func(t *testing.T) {
		doc := []byte(`
non_accredited:
  - {threshold: "abc", bonus_percentage: 1, label: A}
accredited:
  - {threshold: "1000", bonus_percentage: 5, label: B}
`)
		_, _, err := ParseTierTables(doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad threshold")
	})

	t.Run("NegativeThreshold", func(t *testing.T) {
		doc := []byte(`
non_accredited:
  - {threshold: "-1", bonus_percentage: 1, label: A}
accredited:
  - {threshold: "1000", bonus_percentage: 5, label: B}
`)
		_, _, err := ParseTierTables(doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		_, _, err := ParseTierTables([]byte("non_accredited: [:"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse tier tables")
	})
}

func TestFormatting(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "$0.00"},
		{"999.9", "$999.90"},
		{"1234.5", "$1,234.50"},
		{"0.2858", "$0.29"},
		{"1234567.891", "$1,234,567.89"},
		{"-5", "-$5.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(d(tt.amount)), tt.amount)
	}

	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "3,499", FormatNumber(3499))
	assert.Equal(t, "1,199,998", FormatNumber(1199998))
}
