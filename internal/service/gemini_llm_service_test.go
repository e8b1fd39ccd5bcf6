package service

import (
	"context"
	"testing"

	"github.com/quizdesk/quizdesk/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSuggestion(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		correct bool
		reason  string
		wantErr bool
	}{
		{name: "correct", raw: "Verdict: correct\nReason: Names both exits.", correct: true, reason: "Names both exits."},
		{name: "incorrect with markdown", raw: "**Verdict:** Incorrect.\nReason: Off topic", wantErr: true},
		{name: "incorrect", raw: "Some preamble\nverdict: INCORRECT\nreason: Off topic\n", correct: false, reason: "Off topic"},
		{name: "no verdict", raw: "I think it is fine.", wantErr: true},
		{name: "unknown verdict", raw: "Verdict: maybe\nReason: unsure", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSuggestion(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.correct, got.LikelyCorrect)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestReviewAssistantDisabledWithoutKey(t *testing.T) {
	a, err := NewReviewAssistant(&config.Config{})
	require.NoError(t, err)
	assert.False(t, a.Enabled())
	assert.NoError(t, a.Close())

	_, err = a.Suggest(context.Background(), "q", "a")
	assert.Error(t, err)
}

func TestReviewPromptCarriesAnswer(t *testing.T) {
	p := reviewPrompt("What is 2+2?", "four")
	assert.Contains(t, p, "What is 2+2?")
	assert.Contains(t, p, "four")
	assert.Contains(t, p, "Verdict: correct|incorrect")
}
