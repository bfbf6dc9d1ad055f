package llm

// The HuggingFace inference router speaks the OpenAI chat completions
// protocol, so the provider reuses the OpenAI client against a different
// base URL. Model names are Hub repository IDs, e.g.
// "deepseek-ai/DeepSeek-R1-Distill-Qwen-32B".

const huggingFaceBaseURL = "https://router.huggingface.co/v1"

// NewHuggingFace creates a client for the HuggingFace inference router
func NewHuggingFace(apiKey string, opts ...Option) (*OpenAIModel, error) {
	options := append([]Option{}, opts...)
	options = append(options, WithBaseURL(huggingFaceBaseURL))
	return NewOpenAI(apiKey, options...)
}
