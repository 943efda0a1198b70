package rides

import (
	"strconv"
	"strings"

	"github.com/ifti227i/RideShareX/internal/client/models"
)

type Stats struct {
	Rides         int
	TotalSpent    float64
	Rated         int
	AverageRating float64
}

// Summarize computes ride statistics from the stored history. Prices that
// do not parse count as zero; only rated rides enter the average.
func Summarize(history []models.RideRecord) Stats {
	var s Stats
	var ratingSum int

	for _, r := range history {
		s.Rides++
		s.TotalSpent += ParsePrice(r.Price)
		if r.Rating != nil {
			s.Rated++
			ratingSum += *r.Rating
		}
	}
	if s.Rated > 0 {
		s.AverageRating = float64(ratingSum) / float64(s.Rated)
	}
	return s
}

// ParsePrice reads the amount out of a price string such as "৳350".
func ParsePrice(price string) float64 {
	digits := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, price)

	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}
	return v
}
