package domain

// ModelRate is the USD price per million tokens for one model.
type ModelRate struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// PricingTable maps provider → model → rates. Cost derivation is a pure
// function of provider, model, and token counts.
type PricingTable map[string]map[string]ModelRate

// DefaultPricingTable carries the built-in rates. Unknown provider/model
// pairs cost zero rather than failing a run over accounting.
var DefaultPricingTable = PricingTable{
	"openai": {
		"gpt-4o-mini": {InputPerMillion: 0.15, OutputPerMillion: 0.60},
		"gpt-4o":      {InputPerMillion: 2.50, OutputPerMillion: 10.00},
	},
	"anthropic": {
		"claude-3-5-haiku-latest":  {InputPerMillion: 0.80, OutputPerMillion: 4.00},
		"claude-sonnet-4-20250514": {InputPerMillion: 3.00, OutputPerMillion: 15.00},
	},
}

// Cost returns the USD cost of a synthesis call.
func (p PricingTable) Cost(provider, model string, inputTokens, outputTokens int64) float64 {
	models, ok := p[provider]
	if !ok {
		return 0
	}
	rate, ok := models[model]
	if !ok {
		return 0
	}
	return float64(inputTokens)/1_000_000*rate.InputPerMillion +
		float64(outputTokens)/1_000_000*rate.OutputPerMillion
}
