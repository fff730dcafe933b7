package domain

import "time"

// AssetMetrics is the latest computed snapshot for one symbol
type AssetMetrics struct {
	Symbol           string    `json:"symbol" csv:"symbol"`
	LatestPrice      float64   `json:"latest_price" csv:"latest_price"`
	ChangePercent24h float64   `json:"change_percent_24h" csv:"change_percent_24h"`
	AveragePrice7d   float64   `json:"average_price_7d" csv:"average_price_7d"`
	Timestamp        time.Time `json:"timestamp" csv:"timestamp"`
}

type RefreshStatus string

const (
	RefreshStatus_Updated          RefreshStatus = "updated"
	RefreshStatus_NotFound         RefreshStatus = "not_found"
	RefreshStatus_Transient        RefreshStatus = "transient"
	RefreshStatus_InsufficientData RefreshStatus = "insufficient_data"
)

// RefreshOutcome records what happened to a single symbol during a refresh
type RefreshOutcome struct {
	Symbol string        `json:"symbol"`
	Status RefreshStatus `json:"status"`
	Error  *string       `json:"error,omitempty"`
}

type RefreshResult struct {
	Updated  []AssetMetrics
	Outcomes []RefreshOutcome
}

func (r RefreshResult) NumUpdated() int {
	return len(r.Updated)
}
