// Package market holds the static asset-class trend catalog embedded into
// every allocation prompt. The catalog is process-wide, read-only and safe
// for concurrent use.
package market

// Trend pairs an asset class with a human-readable one-year forecast.
type Trend struct {
	Asset    string
	Forecast string
}

// trends is ordered; the prompt renders entries in this order.
var trends = []Trend{
	{
		Asset:    "NIFTY 50",
		Forecast: "Expected to increase by 10-12% in the next year due to strong economic growth and corporate earnings but riskier",
	},
	{
		Asset:    "Gold",
		Forecast: "Expected to increase by 8-10% in the next year due to global economic uncertainty and inflation concerns",
	},
	{
		Asset:    "Bonds",
		Forecast: "Expected to yield 6-7% in the next year with moderate risk",
	},
	{
		Asset:    "Mutual Funds",
		Forecast: "Expected to increase by 8-10% in the next year less risky due to diversification over multiple stocks by experts",
	},
}

// Trends returns the full catalog.
func Trends() []Trend {
	return trends
}

// AssetNames returns the catalog's asset names in catalog order.
func AssetNames() []string {
	names := make([]string, len(trends))
	for i, t := range trends {
		names[i] = t.Asset
	}
	return names
}
