package offering

import (
	"testing"

	"github.com/shopspring/decimal"
)

func BenchmarkCalculate(b *testing.B) {
	b.Run("NonAccredited", func(b *testing.B) {
		amount := decimal.NewFromInt(25000)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = Calculate(amount, false)
		}
	})

	b.Run("Accredited", func(b *testing.B) {
		amount := decimal.NewFromInt(200000)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = Calculate(amount, true)
		}
	})

	b.Run("Parallel", func(b *testing.B) {
		amount := decimal.RequireFromString("12345.67")
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_, _ = Calculate(amount, false)
			}
		})
	})
}

func BenchmarkResolveTier(b *testing.B) {
	amount := decimal.NewFromInt(99500)
	for i := 0; i < b.N; i++ {
		_, _ = ResolveTier(amount, true)
	}
}
