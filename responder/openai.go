// Package responder provides Responder implementations for the chat
// boundary. The pipeline treats the responder as opaque: it supplies the
// history and an optional communication plan and uses the reply verbatim.
package responder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	profilersdk "github.com/caretalk/profiler-sdk-go"
)

// baseSystemPrompt frames the assistant. The communication plan is appended
// when present; it steers style only, never content.
const baseSystemPrompt = "You are a supportive health-communication assistant. " +
	"Answer the user's questions plainly and honestly. " +
	"Follow the communication plan below for style only; it never changes the facts you give."

// OpenAIConfig configures the OpenAI-backed responder.
type OpenAIConfig struct {
	APIKey     string
	Model      openai.ChatModel // default gpt-4o-mini
	MaxRetries int              // retries on rate-limit/server errors, default 2
}

// OpenAIResponder implements profilersdk.Responder via the chat completions
// API.
type OpenAIResponder struct {
	client     openai.Client
	model      openai.ChatModel
	maxRetries int
}

// NewOpenAIResponder creates a responder with the given config.
func NewOpenAIResponder(cfg OpenAIConfig) *OpenAIResponder {
	model := cfg.Model
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 2
	}
	return &OpenAIResponder{
		client:     openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:      model,
		maxRetries: maxRetries,
	}
}

// Respond sends the history to the model. The plan, when present, is rendered
// into the system prompt. Rate-limit and server errors are retried with a
// short backoff; other errors return immediately.
func (r *OpenAIResponder) Respond(ctx context.Context, history []profilersdk.Message, meta profilersdk.RespondMeta) (*profilersdk.Reply, error) {
	system := baseSystemPrompt
	if meta.Plan != nil {
		system += "\n\n" + meta.Plan.FormatForPrompt()
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	messages = append(messages, openai.SystemMessage(system))
	for _, m := range history {
		switch m.Role {
		case "assistant":
			messages = append(messages, openai.AssistantMessage(m.Content))
		case "system":
			messages = append(messages, openai.SystemMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    r.model,
		Messages: messages,
	}

	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		completion, err := r.client.Chat.Completions.New(ctx, params)
		if err != nil {
			lastErr = err
			if attempt < r.maxRetries && isRetryable(err) {
				select {
				case <-time.After(time.Duration(attempt+1) * 2 * time.Second):
					continue
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			return nil, err
		}
		if len(completion.Choices) == 0 {
			return nil, fmt.Errorf("empty completion")
		}
		return &profilersdk.Reply{Content: completion.Choices[0].Message.Content}, nil
	}
	return nil, lastErr
}

func isRetryable(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "429") ||
		strings.Contains(s, "rate limit") ||
		strings.Contains(s, "500") ||
		strings.Contains(s, "server_error")
}

var _ profilersdk.Responder = (*OpenAIResponder)(nil)
