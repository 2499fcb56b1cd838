package advisor

import (
	"fmt"
	"strings"

	"github.com/advisorkit/advisor/internal/market"
	"github.com/advisorkit/advisor/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SystemPrompt is sent with every allocation request.
const SystemPrompt = "You are a professional financial advisor. Always respond with valid JSON."

const noForecastPlaceholder = "No additional market forecast provided"

var amountPrinter = message.NewPrinter(language.English)

// BuildAllocationPrompt assembles the advisory prompt from the investor
// profile and the trend catalog. Deterministic given its inputs.
func BuildAllocationPrompt(req models.InvestmentRequest, trends []market.Trend) string {
	lines := make([]string, 0, len(trends))
	for _, trend := range trends {
		lines = append(lines, fmt.Sprintf("- %s: %s", trend.Asset, trend.Forecast))
	}
	trendsText := strings.Join(lines, "\n")

	forecast := noForecastPlaceholder
	if req.MarketForecast != nil && *req.MarketForecast != "" {
		forecast = *req.MarketForecast
	}

	return fmt.Sprintf(`As a financial advisor, analyze the following investment scenario and provide allocation recommendations:

Investor Age: %d
Investment Amount: $%s

Current Market Trends and Forecasts (Next 1 Year):
%s
Take additional information regarding returns from various asset classes from yfinance with tickers of each asset class as follows:
NIFTY 50 - "^NSEI", Gold - "GC=F" (Gold Futures), US 10Y Bonds - "^TNX", Mutual Funds - "^HDFCQUAL.BO".

Additional Market Context:
%s

Please provide:
1. A detailed allocation percentage breakdown across different asset classes (stocks, bonds, cash, etc.)
2. A brief explanation for the allocation strategy, taking into account the provided market trends

Format your response as a JSON object with 'allocation' and 'explanation' fields.`,
		req.Age, formatAmount(req.InvestmentAmount), trendsText, forecast)
}

// formatAmount renders an amount with thousands separators and two decimal
// places, e.g. 100000 -> "100,000.00".
func formatAmount(amount float64) string {
	return amountPrinter.Sprintf("%.2f", amount)
}
