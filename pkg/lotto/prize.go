package lotto

import "fmt"

// Tier is a prize rank. Lower values are better; TierNone orders after
// every winning rank so Better is a plain less-than.
type Tier int

const (
	TierFirst Tier = iota + 1
	TierSecond
	TierThird
	TierFourth
	TierFifth
	TierNone
)

// TierUnconfirmed is the persisted status of a bundle whose draw result
// is not known yet. It is not a Tier; evaluation never produces it.
const TierUnconfirmed = "unconfirmed"

var tierNames = map[Tier]string{
	TierFirst:  "1st",
	TierSecond: "2nd",
	TierThird:  "3rd",
	TierFourth: "4th",
	TierFifth:  "5th",
	TierNone:   "no-win",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}

	return fmt.Sprintf("tier(%d)", int(t))
}

// IsWinning reports whether the tier pays a prize.
func (t Tier) IsWinning() bool {
	return t >= TierFirst && t <= TierFifth
}

// Better reports whether t is a strictly higher rank than other.
func (t Tier) Better(other Tier) bool {
	return t < other
}

// ParseTier maps a persisted status string back to a Tier. The
// "unconfirmed" status has no Tier and reports false.
func ParseTier(s string) (Tier, bool) {
	for t, name := range tierNames {
		if name == s {
			return t, true
		}
	}

	return 0, false
}

// Evaluate ranks one combination against a draw. Six matches is 1st,
// five plus the bonus is 2nd, five is 3rd, four is 4th, three is 5th,
// anything less wins nothing.
func Evaluate(ticket, winning NumberSet, bonus int) Tier {
	matched := 0
	for _, n := range ticket {
		if winning.Contains(n) {
			matched++
		}
	}

	switch matched {
	case 6:
		return TierFirst
	case 5:
		if ticket.Contains(bonus) {
			return TierSecond
		}
		return TierThird
	case 4:
		return TierFourth
	case 3:
		return TierFifth
	default:
		return TierNone
	}
}

// BestOf returns the best tier any combination of the bundle achieves.
// An empty bundle is TierNone.
func BestOf(bundle TicketBundle, winning NumberSet, bonus int) Tier {
	best := TierNone
	for _, c := range bundle {
		if t := Evaluate(c.Numbers, winning, bonus); t.Better(best) {
			best = t
		}
	}

	return best
}
