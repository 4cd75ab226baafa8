// Package results reads the portfolio result files written by the optimizer.
package results

// UnknownExecutionMode is reported for results that do not record how they were produced
const UnknownExecutionMode = "unknown"

// Holding is one asset allocation inside an optimized portfolio
type Holding struct {
	Ticker string  `json:"Ticker"`
	Weight float64 `json:"Weight"` // Fraction of portfolio value, 0..1
}

// PortfolioResult is the record produced by a single optimization run
type PortfolioResult struct {
	SharpeRatio   float64   `json:"SharpeRatio"`
	ExecutionMode string    `json:"ExecutionMode"`
	TimeElapsedMs float64   `json:"TimeElapsedMs"`
	Timestamp     string    `json:"Timestamp"`
	Stocks        []Holding `json:"Stocks"`
}

// Best is the winning result of a scan together with the file it came from
type Best struct {
	Result *PortfolioResult
	File   string
}
