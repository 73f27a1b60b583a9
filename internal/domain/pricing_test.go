package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePrice(t *testing.T) {
	standard := []PricingTier{
		{MinPax: 1, PricePerPerson: 1200000},
		{MinPax: 2, PricePerPerson: 1100000},
		{MinPax: 4, PricePerPerson: 950000},
	}

	tests := []struct {
		name  string
		tiers []PricingTier
		pax   int
		want  int64
	}{
		{name: "exact tier match", tiers: standard, pax: 2, want: 1100000},
		{name: "closest from below", tiers: standard, pax: 3, want: 1100000},
		{name: "largest tier applies", tiers: standard, pax: 5, want: 950000},
		{name: "single person", tiers: standard, pax: 1, want: 1200000},
		{name: "pax above all tiers", tiers: standard, pax: 20, want: 950000},
		{
			name: "no qualifying tier falls back to last tier",
			tiers: []PricingTier{
				{MinPax: 4, PricePerPerson: 950000},
				{MinPax: 2, PricePerPerson: 1100000},
			},
			pax:  1,
			want: 1100000,
		},
		{name: "empty tier list prices at zero", tiers: nil, pax: 3, want: 0},
		{
			name: "unsorted tiers",
			tiers: []PricingTier{
				{MinPax: 4, PricePerPerson: 950000},
				{MinPax: 1, PricePerPerson: 1200000},
				{MinPax: 2, PricePerPerson: 1100000},
			},
			pax:  3,
			want: 1100000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePrice(tt.tiers, tt.pax))
		})
	}
}

func TestResolvePriceNeverPicksTierAbovePax(t *testing.T) {
	tiers := []PricingTier{
		{MinPax: 1, PricePerPerson: 100},
		{MinPax: 3, PricePerPerson: 80},
		{MinPax: 6, PricePerPerson: 60},
	}
	for pax := 1; pax <= 10; pax++ {
		got := ResolvePrice(tiers, pax)
		switch {
		case pax >= 6:
			assert.Equal(t, int64(60), got, "pax %d", pax)
		case pax >= 3:
			assert.Equal(t, int64(80), got, "pax %d", pax)
		default:
			assert.Equal(t, int64(100), got, "pax %d", pax)
		}
	}
}
