package common

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUUID(t *testing.T) {
	// Test without prefix
	id1 := GenerateUUID("")
	_, err := uuid.Parse(id1)
	assert.NoError(t, err)

	// Test with prefix
	id2 := GenerateUUID("test")
	assert.True(t, strings.HasPrefix(id2, "test_"))
	assert.NotContains(t, strings.TrimPrefix(id2, "test_"), "-")

	// Test uniqueness
	assert.NotEqual(t, id1, GenerateUUID(""))
}

func TestGenerateSubmissionID(t *testing.T) {
	id := GenerateSubmissionID()

	assert.True(t, strings.HasPrefix(id, "inv_"), "got %s", id)
	assert.Len(t, id, len("inv_")+32)
	assert.True(t, IsSubmissionID(id))
	assert.NotEqual(t, id, GenerateSubmissionID())
}

func TestIsSubmissionID(t *testing.T) {
	assert.False(t, IsSubmissionID(""))
	assert.False(t, IsSubmissionID("inv_"))
	assert.False(t, IsSubmissionID("ord_"+strings.Repeat("a", 32)))
	assert.False(t, IsSubmissionID("inv_"+strings.Repeat("z", 32)))
	assert.True(t, IsSubmissionID("inv_"+strings.Repeat("a", 32)))
}

func TestInvestorType(t *testing.T) {
	t.Run("StringRoundTrip", func(t *testing.T) {
		for _, it := range []InvestorType{Individual, Joint, Corporation, Trust, IRA} {
			parsed, err := ParseInvestorType(it.String())
			require.NoError(t, err)
			assert.Equal(t, it, parsed)
			assert.True(t, it.Valid())
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		assert.Equal(t, "unknown", InvestorType(0).String())
		assert.False(t, InvestorType(42).Valid())

		_, err := ParseInvestorType("llc")
		assert.Error(t, err)
	})

	t.Run("JSON", func(t *testing.T) {
		var payload struct {
			Type InvestorType `json:"type"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"type":"ira"}`), &payload))
		assert.Equal(t, IRA, payload.Type)

		out, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"ira"}`, string(out))

		assert.Error(t, json.Unmarshal([]byte(`{"type":"partnership"}`), &payload))
	})
}

func BenchmarkGenerateSubmissionID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateSubmissionID()
	}
}
