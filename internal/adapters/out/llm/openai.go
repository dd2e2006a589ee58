// Package llm talks to an OpenAI-compatible chat completions endpoint, Gemini's
// included, on behalf of the dialogue agent.
package llm

import (
	"context"
	"errors"
	"fmt"

	"pizzabot/internal/adapters/in/tools"
	"pizzabot/internal/agent"
	"pizzabot/internal/pkg/errs"

	"github.com/sashabaranov/go-openai"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
)

var ErrNoChoices = errors.New("model returned no choices")

type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
}

var _ agent.Model = (*Client)(nil)

type Client struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errs.NewValueIsRequiredErrorWithCause("LLM_API_KEY",
			errors.New("set LLM_API_KEY or GEMINI_API_KEY to chat with the model"))
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL

	return &Client{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

func (c *Client) Complete(
	ctx context.Context,
	messages []agent.Message,
	declarations []tools.Declaration,
) (agent.Message, error) {
	request := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    toOpenAIMessages(messages),
		Tools:       toOpenAITools(declarations),
		Temperature: c.temperature,
	}

	response, err := c.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return agent.Message{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(response.Choices) == 0 {
		return agent.Message{}, ErrNoChoices
	}
	return fromOpenAIMessage(response.Choices[0].Message), nil
}

func toOpenAIMessages(messages []agent.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msg := openai.ChatCompletionMessage{
			Role:       string(m.Role),
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
		}
		if m.Role == agent.RoleTool {
			msg.Name = m.Name
		}
		for _, call := range m.ToolCalls {
			msg.ToolCalls = append(msg.ToolCalls, openai.ToolCall{
				ID:   call.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      call.Name,
					Arguments: call.Arguments,
				},
			})
		}
		out = append(out, msg)
	}
	return out
}

func toOpenAITools(declarations []tools.Declaration) []openai.Tool {
	out := make([]openai.Tool, 0, len(declarations))
	for _, d := range declarations {
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        d.Name,
				Description: d.Description,
				Parameters:  d.Parameters,
			},
		})
	}
	return out
}

func fromOpenAIMessage(msg openai.ChatCompletionMessage) agent.Message {
	out := agent.Message{Role: agent.RoleAssistant, Content: msg.Content}
	for _, call := range msg.ToolCalls {
		if call.Type != "" && call.Type != openai.ToolTypeFunction {
			continue
		}
		arguments := call.Function.Arguments
		if arguments == "" {
			arguments = "{}"
		}
		out.ToolCalls = append(out.ToolCalls, agent.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: arguments,
		})
	}
	return out
}
