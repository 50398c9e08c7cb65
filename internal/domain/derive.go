package domain

import "math"

// Rating is the net feedback score. It is computed wherever a
// positive/negative pair appears and is never clamped.
func Rating(positive, negative int64) int64 {
	return positive - negative
}

// PerMember normalizes a total by the current member count, rounded to two
// decimals. A group can lose all members while keeping historical totals, so
// members <= 0 yields 0 rather than an error.
func PerMember(total, members int64) float64 {
	if members <= 0 {
		return 0
	}
	return math.Round(float64(total)/float64(members)*100) / 100
}

// Sign classifies a rating for presentation. Sorting uses the signed value
// itself, never the sign.
type Sign int

const (
	SignNegative Sign = -1
	SignNeutral  Sign = 0
	SignPositive Sign = 1
)

func RatingSign(rating int64) Sign {
	switch {
	case rating > 0:
		return SignPositive
	case rating < 0:
		return SignNegative
	default:
		return SignNeutral
	}
}
