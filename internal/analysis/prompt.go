package analysis

func SystemPrompt() string {
	return "You are an expert in air conditioning systems and consumer electronics."
}

const promptTemplate = `Analyze these air conditioner products and provide:
1. Best value for money
2. Most energy efficient options
3. Recommendations based on BTU capacity
4. Price comparison between brands

Products:
%s

Provide a concise analysis and recommendation.`
