package internal

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/DrGermanius/Receiptmart/internal/model"
)

var (
	one     = decimal.New(1, 0)
	quarter = decimal.New(25, -2)
	fifth   = decimal.New(2, -1)
)

// CalculatePoints derives the loyalty points for a canonical receipt.
// Pure and deterministic: the same receipt always scores the same.
func CalculatePoints(r model.Receipt) int64 {
	var points int64

	// one point per alphanumeric character in the retailer name
	for i := 0; i < len(r.Retailer); i++ {
		if isASCIIAlphanumeric(r.Retailer[i]) {
			points++
		}
	}

	// 50 points for a round dollar total
	if r.Total.Mod(one).IsZero() {
		points += 50
	}

	// 25 points for a total that is a multiple of 0.25;
	// stacks with the round dollar bonus on purpose
	if r.Total.Mod(quarter).IsZero() {
		points += 25
	}

	// 5 points for every two items
	points += 5 * int64(len(r.Items)/2)

	// ceil(price * 0.2) per item whose trimmed description length is a
	// positive multiple of 3; length 0 never qualifies
	for _, it := range r.Items {
		trimmed := strings.TrimSpace(it.ShortDescription)
		if len(trimmed) != 0 && len(trimmed)%3 == 0 {
			points += it.Price.Mul(fifth).Ceil().IntPart()
		}
	}

	// 6 points for an odd purchase day
	if r.PurchasedAt.Day()%2 == 1 {
		points += 6
	}

	// 10 points for a purchase between 14:00 inclusive and 16:00 exclusive
	if h := r.PurchasedAt.Hour(); h >= 14 && h < 16 {
		points += 10
	}

	return points
}

// explicit ASCII ranges; unicode letters and digits do not count
func isASCIIAlphanumeric(b byte) bool {
	return b >= '0' && b <= '9' ||
		b >= 'A' && b <= 'Z' ||
		b >= 'a' && b <= 'z'
}
