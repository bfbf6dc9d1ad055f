package llm

import (
	"fmt"
	"os"

	"github.com/smellscan/smellscan/logger"
)

// Supported provider names
const (
	ProviderOpenAI      = "openai"
	ProviderHuggingFace = "huggingface"
	ProviderAnthropic   = "anthropic"
)

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	ModelNameOption   OptionType = "model"
	MaxTokensOption   OptionType = "max_tokens"
	APITimeoutOption  OptionType = "api_timeout"
	TemperatureOption OptionType = "temperature"
	RetryMaxOption    OptionType = "retry_max"
	BaseURLOption     OptionType = "base_url"
)

// Option represents a generic configuration option for any LLM provider
type Option struct {
	Type  OptionType
	Value any
}

// WithModel creates an option to set the model name
func WithModel(model string) Option {
	return Option{
		Type:  ModelNameOption,
		Value: model,
	}
}

// WithMaxTokens creates an option to set the max tokens
func WithMaxTokens(maxTokens int) Option {
	return Option{
		Type:  MaxTokensOption,
		Value: maxTokens,
	}
}

// WithAPITimeout creates an option to set the API timeout in seconds
func WithAPITimeout(timeout int) Option {
	return Option{
		Type:  APITimeoutOption,
		Value: timeout,
	}
}

// WithTemperature creates an option to set the sampling temperature
func WithTemperature(temperature float32) Option {
	return Option{
		Type:  TemperatureOption,
		Value: temperature,
	}
}

// WithRetryMax creates an option to set the number of HTTP retries
func WithRetryMax(retryMax int) Option {
	return Option{
		Type:  RetryMaxOption,
		Value: retryMax,
	}
}

// WithBaseURL creates an option to override the API base URL
func WithBaseURL(baseURL string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: baseURL,
	}
}

// Request represents the data needed to prompt the LLM for one sample
type Request struct {
	SystemPrompt string
	UserPrompt   string
}

// Response represents the response from the LLM
type Response struct {
	Content string
	Error   error
}

// LLM defines the interface for language model prompting
type LLM interface {
	// Prompt sends a request to the language model and returns its response
	Prompt(req Request) Response
}

func getAPIKey() (string, error) {
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("LLM_API_KEY environment variable is not set")
	}
	return apiKey, nil
}

// NewLLM creates a client for the named provider. The endpoint credential
// is read from the LLM_API_KEY environment variable.
func NewLLM(providerName, modelName string, opts ...Option) (LLM, error) {
	var llmClient LLM
	var err error

	apiKey, err := getAPIKey()
	if err != nil {
		return nil, err
	}

	options := []Option{
		WithModel(modelName),
		WithMaxTokens(1500),
		WithAPITimeout(60),
	}
	options = append(options, opts...)

	switch providerName {
	case ProviderOpenAI:
		llmClient, err = NewOpenAI(apiKey, options...)
	case ProviderHuggingFace:
		llmClient, err = NewHuggingFace(apiKey, options...)
	case ProviderAnthropic:
		llmClient, err = NewAnthropic(apiKey, options...)
	default:
		err = fmt.Errorf("unsupported provider: %s", providerName)
	}

	if err == nil {
		logger.Infof("Using LLM provider %s with model %s", providerName, modelName)
	}

	return llmClient, err
}
