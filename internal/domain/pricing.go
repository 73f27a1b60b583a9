package domain

// ResolvePrice returns the price per person for a group of pax people.
//
// Among tiers whose MinPax does not exceed pax, the one with the largest
// MinPax wins (closest match from below). When no tier qualifies, the last
// tier in the supplied list is used as the ceiling price, so pax counts above
// every defined tier still pay the highest-defined tier price. An empty tier
// list prices at 0; that is a valid degenerate case, not an error.
//
// The tier list does not need to be sorted.
func ResolvePrice(tiers []PricingTier, pax int) int64 {
	if len(tiers) == 0 {
		return 0
	}

	best := -1
	for i, t := range tiers {
		if t.MinPax > pax {
			continue
		}
		if best < 0 || t.MinPax > tiers[best].MinPax {
			best = i
		}
	}
	if best < 0 {
		return tiers[len(tiers)-1].PricePerPerson
	}
	return tiers[best].PricePerPerson
}
