package responder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sashabaranov/go-openai"

	"AgentDesk/entity"
	"AgentDesk/internal/config"
	"AgentDesk/internal/lib/sl"
)

// ErrNotConfigured means the OpenAI key is missing and AI features are
// unavailable.
var ErrNotConfigured = errors.New("responder not configured")

const suggestSystemPrompt = "You are a customer support agent. Given the conversation so far, " +
	"draft a short, friendly reply to the customer's latest message. Reply with the message text only."

const summarizeSystemPrompt = "Summarize the following call transcript in two or three sentences " +
	"for a customer dashboard. Mention the topic and any agreed follow-up."

// Service wraps chat completions behind the two operations the dashboard
// needs: suggested replies and call summaries.
type Service struct {
	client *openai.Client
	model  string
	log    *slog.Logger
}

// NewService returns nil when no API key is configured; callers treat a
// nil service as "feature off".
func NewService(conf *config.Config, logger *slog.Logger) *Service {
	if conf.OpenAI.ApiKey == "" {
		return nil
	}
	return &Service{
		client: openai.NewClient(conf.OpenAI.ApiKey),
		model:  conf.OpenAI.Model,
		log:    logger.With(sl.Module("responder")),
	}
}

// SuggestReply drafts an agent reply from a conversation thread, oldest
// message first.
func (s *Service) SuggestReply(ctx context.Context, thread []entity.Record) (string, error) {
	if s == nil {
		return "", ErrNotConfigured
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: suggestSystemPrompt},
	}
	for _, r := range thread {
		if userMsg := entity.FieldString(r, "user_message"); userMsg != "" {
			messages = append(messages, openai.ChatCompletionMessage{
				Role: openai.ChatMessageRoleUser, Content: userMsg,
			})
		}
		if aiMsg := entity.FieldString(r, "ai_response"); aiMsg != "" {
			messages = append(messages, openai.ChatCompletionMessage{
				Role: openai.ChatMessageRoleAssistant, Content: aiMsg,
			})
		}
	}

	return s.complete(ctx, messages, "suggest reply")
}

// SummarizeCall produces a dashboard summary from raw call details.
func (s *Service) SummarizeCall(ctx context.Context, details string) (string, error) {
	if s == nil {
		return "", ErrNotConfigured
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: summarizeSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: details},
	}

	return s.complete(ctx, messages, "summarize call")
}

func (s *Service) complete(ctx context.Context, messages []openai.ChatCompletionMessage, op string) (out string, err error) {
	log := s.log.With(slog.String("operation", op), slog.Int("messages", len(messages)))

	t := time.Now()
	defer func() {
		log = log.With(slog.Duration("duration", time.Since(t)))
		if err != nil {
			log.Error("completion", sl.Err(err))
		} else {
			log.Debug("completion")
		}
	}()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
