package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/quizdesk/quizdesk/config"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// ReviewAssistant suggests a verdict for a free-text answer. Suggestions are
// advisory; reviewers always decide.
type ReviewAssistant interface {
	Enabled() bool
	Suggest(ctx context.Context, questionText, userAnswer string) (*dto.ReviewSuggestionDTO, error)
	Close() error
}

const suggestTimeout = 15 * time.Second

type geminiReviewAssistant struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewReviewAssistant returns a disabled assistant when GEMINI_API_KEY is not set.
func NewReviewAssistant(cfg *config.Config) (ReviewAssistant, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Review suggestions are disabled.")
		return &geminiReviewAssistant{}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	model.SetTemperature(0)
	return &geminiReviewAssistant{client: client, model: model}, nil
}

func (s *geminiReviewAssistant) Enabled() bool { return s.model != nil }

func (s *geminiReviewAssistant) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *geminiReviewAssistant) Suggest(ctx context.Context, questionText, userAnswer string) (*dto.ReviewSuggestionDTO, error) {
	if s.model == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, suggestTimeout)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx, genai.Text(reviewPrompt(questionText, userAnswer)))
	if err != nil {
		return nil, fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no content")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			raw.WriteString(string(txt))
		}
	}
	return parseSuggestion(raw.String())
}

func reviewPrompt(questionText, userAnswer string) string {
	var b strings.Builder
	b.WriteString("You are assisting an examiner who grades free-text answers of a knowledge test.\n")
	b.WriteString("Decide whether the answer below correctly answers the question.\n\n")
	b.WriteString("Question:\n---\n")
	b.WriteString(questionText)
	b.WriteString("\n---\n\nAnswer:\n---\n")
	b.WriteString(userAnswer)
	b.WriteString("\n---\n\n")
	b.WriteString("Format your response strictly as:\n")
	b.WriteString("Verdict: correct|incorrect\n")
	b.WriteString("Reason: [one or two sentences]\n")
	return b.String()
}

// parseSuggestion reads the "Verdict:" and "Reason:" lines of a reply.
func parseSuggestion(raw string) (*dto.ReviewSuggestionDTO, error) {
	var verdict, reason string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "verdict:"):
			verdict = strings.ToLower(strings.Trim(strings.TrimSpace(line[len("verdict:"):]), "*. "))
		case strings.HasPrefix(lower, "reason:"):
			reason = strings.TrimSpace(line[len("reason:"):])
		}
	}

	switch verdict {
	case "correct":
		return &dto.ReviewSuggestionDTO{LikelyCorrect: true, Reason: reason}, nil
	case "incorrect":
		return &dto.ReviewSuggestionDTO{LikelyCorrect: false, Reason: reason}, nil
	default:
		return nil, fmt.Errorf("response does not contain a verdict. Raw: %s", raw)
	}
}
