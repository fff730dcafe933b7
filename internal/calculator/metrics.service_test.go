package calculator

import (
	"findata/internal/domain"
	"findata/internal/util"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func points(prices ...float64) []domain.PricePoint {
	out := []domain.PricePoint{}
	for i, p := range prices {
		out = append(out, domain.PricePoint{
			Date:  util.NewDate(2024, 1, 1+i),
			Price: p,
		})
	}
	return out
}

func TestComputeMetrics(t *testing.T) {
	now := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)

	t.Run("two closes", func(t *testing.T) {
		result, err := ComputeMetrics("AAPL", points(100, 110), now)
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(
				&domain.AssetMetrics{
					Symbol:           "AAPL",
					LatestPrice:      110,
					ChangePercent24h: 10,
					AveragePrice7d:   105,
					Timestamp:        now,
				},
				result,
				cmp.Comparer(func(i, j float64) bool {
					return math.Abs(i-j) < 0.0001
				}),
			),
		)
	})

	t.Run("full week uses every close for the average", func(t *testing.T) {
		result, err := ComputeMetrics("TSLA", points(10, 20, 30, 40, 50, 60, 70), now)
		require.NoError(t, err)
		require.Equal(t, 70.0, result.LatestPrice)
		require.InDelta(t, 40.0, result.AveragePrice7d, 0.0001)
		require.InDelta(t, 16.6667, result.ChangePercent24h, 0.0001)
	})

	t.Run("out of order closes are sorted by date", func(t *testing.T) {
		in := points(100, 110, 121)
		shuffled := []domain.PricePoint{in[2], in[0], in[1]}

		result, err := ComputeMetrics("AAPL", shuffled, now)
		require.NoError(t, err)
		require.Equal(t, 121.0, result.LatestPrice)
		require.InDelta(t, 10.0, result.ChangePercent24h, 0.0001)
		require.Equal(t, in[2], shuffled[0])
	})

	t.Run("change sign follows latest minus previous", func(t *testing.T) {
		cases := [][]float64{
			{100, 90},
			{90, 100},
			{5, 1, 3},
			{3, 3},
		}
		for _, c := range cases {
			result, err := ComputeMetrics("X", points(c...), now)
			require.NoError(t, err)
			diff := c[len(c)-1] - c[len(c)-2]
			switch {
			case diff > 0:
				require.Greater(t, result.ChangePercent24h, 0.0)
			case diff < 0:
				require.Less(t, result.ChangePercent24h, 0.0)
			default:
				require.Equal(t, 0.0, result.ChangePercent24h)
			}
		}
	})

	t.Run("single close", func(t *testing.T) {
		_, err := ComputeMetrics("AAPL", points(100), now)
		require.ErrorIs(t, err, domain.ErrInsufficientData)
	})

	t.Run("no closes", func(t *testing.T) {
		_, err := ComputeMetrics("AAPL", nil, now)
		require.ErrorIs(t, err, domain.ErrInsufficientData)
	})

	t.Run("previous close is zero", func(t *testing.T) {
		_, err := ComputeMetrics("AAPL", points(0, 10), now)
		require.ErrorIs(t, err, domain.ErrInsufficientData)
	})

	t.Run("non-finite close", func(t *testing.T) {
		_, err := ComputeMetrics("AAPL", points(1, math.NaN(), 2), now)
		require.ErrorIs(t, err, domain.ErrInsufficientData)
	})

	t.Run("timestamp is stored in utc", func(t *testing.T) {
		loc := time.FixedZone("EST", -5*60*60)
		result, err := ComputeMetrics("AAPL", points(1, 2), now.In(loc))
		require.NoError(t, err)
		require.Equal(t, time.UTC, result.Timestamp.Location())
		require.True(t, now.Equal(result.Timestamp))
	})
}
