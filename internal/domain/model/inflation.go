package model

const (
	DefaultInflationRate   = 2.5
	DefaultInflationChange = 0.0
)

// InflationReading is produced by the inflation collector and only read here.
type InflationReading struct {
	Current float64 `json:"current"`
	Change  float64 `json:"change"`
}

// DefaultInflation is substituted when the inflation artifact is unusable.
func DefaultInflation() InflationReading {
	return InflationReading{Current: DefaultInflationRate, Change: DefaultInflationChange}
}
