package entity

import (
	"github.com/gamzalab/lotto-backend/pkg/lotto"
)

// Combination is the stored form of one labeled pick.
type Combination struct {
	Label   string `json:"label"`
	Numbers []int  `json:"numbers"`
}

// PrizeStatusUnconfirmed marks a record whose draw result is unknown.
// Once checked, the status holds a lotto.Tier string form.
const PrizeStatusUnconfirmed = "unconfirmed"

func CombinationsFromBundle(bundle lotto.TicketBundle) Array[Combination] {
	combinations := make(Array[Combination], 0, len(bundle))
	for _, c := range bundle {
		combinations = append(combinations, Combination{Label: c.Label, Numbers: c.Numbers})
	}

	return combinations
}

func BundleFromCombinations(combinations Array[Combination]) lotto.TicketBundle {
	bundle := make(lotto.TicketBundle, 0, len(combinations))
	for _, c := range combinations {
		bundle = append(bundle, lotto.Combination{Label: c.Label, Numbers: c.Numbers})
	}

	return bundle
}
