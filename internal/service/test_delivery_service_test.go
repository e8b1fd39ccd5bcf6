package service

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/quizdesk/quizdesk/internal/apperror"
	"github.com/quizdesk/quizdesk/internal/model"
	"github.com/quizdesk/quizdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noShuffle(int, func(i, j int)) {}

func TestPrepareTestSamplesWithoutReplacement(t *testing.T) {
	f := newFixture(t)
	test := testutil.SeedTest(t, f.db, "Bank", 3, 15, 70)
	for i := 0; i < 6; i++ {
		testutil.SeedChoice(t, f.db, test.ID, "q", []string{"a", "b"}, []string{"A", "B"}, []string{"a"})
	}

	for run := 0; run < 20; run++ {
		out, err := f.delivery.PrepareTest(f.ctx, test.ID)
		require.NoError(t, err)
		require.Len(t, out.Questions, 3)
		assert.Equal(t, 15, out.DurationMinutes)
		assert.Equal(t, "Bank", out.Name)

		seen := map[string]bool{}
		for _, q := range out.Questions {
			assert.False(t, seen[q.ID], "question %s delivered twice", q.ID)
			seen[q.ID] = true
		}
	}
}

func TestPrepareTestSmallBank(t *testing.T) {
	f := newFixture(t)
	test, _, _ := safetyTest(t, f.db)

	out, err := f.delivery.PrepareTest(f.ctx, test.ID)
	require.NoError(t, err)
	assert.Len(t, out.Questions, 2)
}

func TestPrepareTestHidesAnswers(t *testing.T) {
	f := newFixture(t)
	f.delivery.shuffle = noShuffle
	test := testutil.SeedTest(t, f.db, "Secrets", 10, 10, 70)
	testutil.SeedChoice(t, f.db, test.ID, "choice", []string{"k1", "k2", "k3"}, []string{"One", "Two", "Three"}, []string{"k2"})
	match := testutil.SeedMatch(t, f.db, test.ID, "match", []string{"A", "B", "C"}, []string{"x", "y", "z"})
	testutil.SeedText(t, f.db, test.ID, "text")

	out, err := f.delivery.PrepareTest(f.ctx, test.ID)
	require.NoError(t, err)
	require.Len(t, out.Questions, 3)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "correct_option_key")
	assert.NotContains(t, string(raw), "match_answers")
	assert.NotContains(t, string(raw), "explain")

	for _, q := range out.Questions {
		switch q.Type {
		case model.QuestionTypeCheckbox:
			require.Len(t, q.Options, 3)
			for _, o := range q.Options {
				assert.Equal(t, q.ID, o.QuestionID)
			}
			assert.Equal(t, "k1", q.Options[0].Key, "options keep their authored order")
		case model.QuestionTypeMatch:
			assert.Equal(t, match.ID, q.ID)
			assert.Equal(t, []string{"A", "B", "C"}, q.MatchPrompts)
			assert.ElementsMatch(t, []string{"x", "y", "z"}, q.AnswerPool)
			assert.NotEqual(t, []string{"x", "y", "z"}, q.AnswerPool, "the pool never arrives in solution order")
		case model.QuestionTypeTextInput:
			assert.Empty(t, q.Options)
			assert.Empty(t, q.AnswerPool)
		}
	}
}

func TestPrepareTestNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.delivery.PrepareTest(f.ctx, uuid.NewString())
	assert.True(t, apperror.IsNotFound(err))

	bare := model.Test{ID: uuid.NewString(), Name: "No settings"}
	require.NoError(t, f.db.Create(&bare).Error)
	_, err = f.delivery.PrepareTest(f.ctx, bare.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestPrepareTestMalformedStoredArrays(t *testing.T) {
	f := newFixture(t)
	test := testutil.SeedTest(t, f.db, "Corrupt", 10, 10, 70)
	q := testutil.SeedMatch(t, f.db, test.ID, "broken", []string{"A", "B"}, []string{"x", "y"})
	require.NoError(t, f.db.Model(&model.Question{}).Where("id = ?", q.ID).Update("match_prompts", "{not json").Error)
	testutil.SeedText(t, f.db, test.ID, "still fine")

	out, err := f.delivery.PrepareTest(f.ctx, test.ID)
	require.NoError(t, err)
	require.Len(t, out.Questions, 2)
	for _, dq := range out.Questions {
		if dq.ID == q.ID {
			assert.Empty(t, dq.MatchPrompts)
		}
	}
}
