package domain

import "time"

// PricePoint is one daily close returned by a market data provider
type PricePoint struct {
	Date  time.Time
	Price float64
}

// Closes strips the dates, keeping order
func Closes(points []PricePoint) []float64 {
	out := make([]float64, 0, len(points))
	for _, p := range points {
		out = append(out, p.Price)
	}
	return out
}
