package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/smellscan/smellscan/common"
	"github.com/smellscan/smellscan/logger"
)

// OpenAIModel implements the LLM interface using OpenAI's chat completions API
type OpenAIModel struct {
	client      *openai.Client
	modelName   string
	maxTokens   int
	temperature float32
	apiTimeout  int // in seconds
}

// NewOpenAI creates a new OpenAI client
func NewOpenAI(apiKey string, opts ...Option) (*OpenAIModel, error) {
	if apiKey == "" {
		errMsg := "OpenAI API key cannot be empty"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	model := &OpenAIModel{
		modelName:   "gpt-5-mini",
		maxTokens:   1500,
		temperature: 1.0,
		apiTimeout:  60,
	}

	retryConfig := common.DefaultRetryConfig()
	var baseURL string

	// Apply options
	for _, opt := range opts {
		switch opt.Type {
		case ModelNameOption:
			if modelName, ok := opt.Value.(string); ok {
				model.modelName = modelName
			}
		case MaxTokensOption:
			if maxTokens, ok := opt.Value.(int); ok {
				model.maxTokens = maxTokens
			}
		case APITimeoutOption:
			if timeout, ok := opt.Value.(int); ok {
				model.apiTimeout = timeout
			}
		case TemperatureOption:
			if temperature, ok := opt.Value.(float32); ok {
				model.temperature = temperature
			}
		case RetryMaxOption:
			if retryMax, ok := opt.Value.(int); ok {
				retryConfig.RetryMax = retryMax
			}
		case BaseURLOption:
			if url, ok := opt.Value.(string); ok {
				baseURL = url
			}
		}
	}

	retryClient := common.NewRetryableClient(retryConfig)

	config := openai.DefaultConfig(apiKey)
	config.HTTPClient = retryClient.StandardClient()
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	model.client = openai.NewClientWithConfig(config)

	logger.Debugf("OpenAI client initialized with model: %s, max tokens: %d, timeout: %d seconds",
		model.modelName, model.maxTokens, model.apiTimeout)

	return model, nil
}

// Prompt sends a request to OpenAI and returns the response
func (o *OpenAIModel) Prompt(req Request) Response {
	logger.Debugf("Sending prompt to OpenAI model: %s", o.modelName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(o.apiTimeout)*time.Second)
	defer cancel()

	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: req.UserPrompt,
		},
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       o.modelName,
		Messages:    messages,
		MaxTokens:   o.maxTokens,
		Temperature: o.temperature,
	}

	resp, err := o.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		errMsg := fmt.Sprintf("failed to create chat completion: %v", err)
		logger.Error(errMsg)
		return Response{
			Error: errors.New(errMsg),
		}
	}

	if len(resp.Choices) == 0 {
		errMsg := "OpenAI response contained no choices"
		logger.Error(errMsg)
		return Response{
			Error: errors.New(errMsg),
		}
	}

	return Response{
		Content: resp.Choices[0].Message.Content,
	}
}
