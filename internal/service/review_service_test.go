package service

import (
	"errors"
	"testing"
	"time"

	"github.com/quizdesk/quizdesk/internal/apperror"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/model"
	"github.com/quizdesk/quizdesk/internal/notifier"
	"github.com/quizdesk/quizdesk/internal/scoring"
	"github.com/quizdesk/quizdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingAnswerIDs(t *testing.T, f *fixture, resultID uint) []uint {
	t.Helper()
	items, err := f.review.ListPending(f.ctx, resultID)
	require.NoError(t, err)
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.AnswerID)
	}
	return ids
}

func TestReviewCompletesResult(t *testing.T) {
	f := newFixture(t)
	test, choice, text := safetyTest(t, f.db)
	res := f.submit(t, test.ID, "Petrov P.P.", answer(choice, "a", "b"), answer(text, "East stairwell"))

	items, err := f.review.ListPending(f.ctx, res.ResultID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Describe the evacuation route.", items[0].QuestionText)
	assert.Equal(t, "East stairwell", items[0].UserAnswer)
	assert.Nil(t, items[0].Suggestion)

	summary, err := f.review.SubmitBatch(f.ctx, []dto.VerdictDTO{{AnswerID: items[0].AnswerID, IsCorrect: boolPtr(true)}})
	require.NoError(t, err)
	assert.Equal(t, model.ResultStatusCompleted, summary.Status)

	stored := f.result(t, res.ResultID)
	assert.Equal(t, 2, stored.Score)
	assert.Equal(t, 2, stored.Total)
	assert.Equal(t, 100, stored.Percentage)
	assert.True(t, stored.Passed)
	assert.Equal(t, model.ResultStatusCompleted, stored.Status)

	answers, err := f.answers.FindByIDs(f.ctx, []uint{items[0].AnswerID})
	require.NoError(t, err)
	assert.Equal(t, string(scoring.ReviewManualCorrect), answers[0].ReviewStatus)

	events := f.events.Events()
	require.Len(t, events, 2)
	assert.Equal(t, notifier.EventResultReviewed, events[1].Name)
	payload := events[1].Payload.(notifier.ResultReviewedPayload)
	assert.Equal(t, res.ResultID, payload.ResultID)
	row := payload.FinalResultData
	assert.Equal(t, res.ResultID, row.ID)
	assert.Equal(t, test.ID, row.TestID)
	assert.Equal(t, "Petrov P.P.", row.FIO)
	assert.Equal(t, 2, row.Score)
	assert.Equal(t, 2, row.Total)
	assert.Equal(t, 100, row.Percentage)
	assert.True(t, row.Passed)
	assert.Equal(t, model.ResultStatusCompleted, row.Status)
	assert.False(t, row.Date.IsZero())
	assert.WithinDuration(t, stored.Date, row.Date, time.Second)
}

func TestReviewIncorrectVerdict(t *testing.T) {
	f := newFixture(t)
	test, choice, text := safetyTest(t, f.db)
	res := f.submit(t, test.ID, "Petrov P.P.", answer(choice, "a", "b"), answer(text, "No idea"))

	ids := pendingAnswerIDs(t, f, res.ResultID)
	_, err := f.review.SubmitBatch(f.ctx, []dto.VerdictDTO{{AnswerID: ids[0], IsCorrect: boolPtr(false)}})
	require.NoError(t, err)

	stored := f.result(t, res.ResultID)
	assert.Equal(t, 1, stored.Score)
	assert.Equal(t, 50, stored.Percentage)
	assert.False(t, stored.Passed)
	assert.Equal(t, model.ResultStatusCompleted, stored.Status)
}

func TestReviewPartialBatchCompletesResult(t *testing.T) {
	f := newFixture(t)
	test := testutil.SeedTest(t, f.db, "Essays", 5, 30, 50)
	q1 := testutil.SeedText(t, f.db, test.ID, "First")
	q2 := testutil.SeedText(t, f.db, test.ID, "Second")
	res := f.submit(t, test.ID, "Writer W.W.", answer(q1, "one"), answer(q2, "two"))

	ids := pendingAnswerIDs(t, f, res.ResultID)
	require.Len(t, ids, 2)

	summary, err := f.review.SubmitBatch(f.ctx, []dto.VerdictDTO{{AnswerID: ids[0], IsCorrect: boolPtr(true)}})
	require.NoError(t, err)
	assert.Equal(t, model.ResultStatusCompleted, summary.Status)
	stored := f.result(t, res.ResultID)
	assert.Equal(t, model.ResultStatusCompleted, stored.Status)
	assert.Equal(t, 1, stored.Score)
	assert.Equal(t, 2, stored.Total)
	assert.Equal(t, 50, stored.Percentage)
	assert.True(t, stored.Passed)

	// The unjudged answer stays in the queue.
	assert.Equal(t, []uint{ids[1]}, pendingAnswerIDs(t, f, res.ResultID))

	_, err = f.review.SubmitBatch(f.ctx, []dto.VerdictDTO{{AnswerID: ids[1], IsCorrect: boolPtr(false)}})
	require.NoError(t, err)
	stored = f.result(t, res.ResultID)
	assert.Equal(t, model.ResultStatusCompleted, stored.Status)
	assert.Equal(t, 1, stored.Score)
	assert.Equal(t, 50, stored.Percentage)
	assert.True(t, stored.Passed)
}

func TestReviewRejectsBadBatches(t *testing.T) {
	f := newFixture(t)
	test, choice, text := safetyTest(t, f.db)
	first := f.submit(t, test.ID, "One", answer(choice, "a"), answer(text, "first text"))
	second := f.submit(t, test.ID, "Two", answer(choice, "a"), answer(text, "second text"))
	firstPending := pendingAnswerIDs(t, f, first.ResultID)[0]
	secondPending := pendingAnswerIDs(t, f, second.ResultID)[0]

	all, err := f.answers.FindByResultID(f.ctx, first.ResultID)
	require.NoError(t, err)
	var autoAnswer uint
	for _, a := range all {
		if a.ReviewStatus == string(scoring.ReviewAuto) {
			autoAnswer = a.ID
		}
	}
	require.NotZero(t, autoAnswer)

	tests := []struct {
		name     string
		verdicts []dto.VerdictDTO
		check    func(t *testing.T, err error)
	}{
		{
			name:     "empty batch",
			verdicts: nil,
			check:    func(t *testing.T, err error) { assert.True(t, apperror.IsValidation(err)) },
		},
		{
			name: "mixed results",
			verdicts: []dto.VerdictDTO{
				{AnswerID: firstPending, IsCorrect: boolPtr(true)},
				{AnswerID: secondPending, IsCorrect: boolPtr(true)},
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, apperror.ErrMixedResults) },
		},
		{
			name: "unknown answer",
			verdicts: []dto.VerdictDTO{
				{AnswerID: firstPending, IsCorrect: boolPtr(true)},
				{AnswerID: 999999, IsCorrect: boolPtr(true)},
			},
			check: func(t *testing.T, err error) { assert.True(t, apperror.IsNotFound(err)) },
		},
		{
			name: "already judged answer",
			verdicts: []dto.VerdictDTO{
				{AnswerID: firstPending, IsCorrect: boolPtr(true)},
				{AnswerID: autoAnswer, IsCorrect: boolPtr(true)},
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, apperror.ErrAlreadyReviewed) },
		},
		{
			name: "duplicate answer",
			verdicts: []dto.VerdictDTO{
				{AnswerID: firstPending, IsCorrect: boolPtr(true)},
				{AnswerID: firstPending, IsCorrect: boolPtr(false)},
			},
			check: func(t *testing.T, err error) { assert.True(t, apperror.IsValidation(err)) },
		},
		{
			name:     "missing decision",
			verdicts: []dto.VerdictDTO{{AnswerID: firstPending}},
			check:    func(t *testing.T, err error) { assert.True(t, apperror.IsValidation(err)) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.review.SubmitBatch(f.ctx, tt.verdicts)
			require.Error(t, err)
			tt.check(t, err)

			// Nothing from a rejected batch may stick.
			for _, id := range []uint{first.ResultID, second.ResultID} {
				assert.Equal(t, model.ResultStatusPendingReview, f.result(t, id).Status)
			}
			assert.Len(t, pendingAnswerIDs(t, f, first.ResultID), 1)
			assert.Len(t, pendingAnswerIDs(t, f, second.ResultID), 1)
		})
	}
}

func TestReviewTwiceIsRejected(t *testing.T) {
	f := newFixture(t)
	test, _, text := safetyTest(t, f.db)
	res := f.submit(t, test.ID, "Twice", answer(text, "text"))
	id := pendingAnswerIDs(t, f, res.ResultID)[0]

	_, err := f.review.SubmitBatch(f.ctx, []dto.VerdictDTO{{AnswerID: id, IsCorrect: boolPtr(true)}})
	require.NoError(t, err)
	_, err = f.review.SubmitBatch(f.ctx, []dto.VerdictDTO{{AnswerID: id, IsCorrect: boolPtr(false)}})
	assert.ErrorIs(t, err, apperror.ErrAlreadyReviewed)
	assert.True(t, f.result(t, res.ResultID).Passed)
}

func TestListPendingWithSuggestions(t *testing.T) {
	f := newFixture(t)
	test, _, text := safetyTest(t, f.db)
	res := f.submit(t, test.ID, "Hinted", answer(text, "Via the east exit"))

	assistant := &stubAssistant{suggestion: &dto.ReviewSuggestionDTO{LikelyCorrect: true, Reason: "names an exit"}}
	f.review.assistant = assistant
	items, err := f.review.ListPending(f.ctx, res.ResultID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Suggestion)
	assert.True(t, items[0].Suggestion.LikelyCorrect)

	assistant.err = errors.New("quota exceeded")
	assistant.suggestion = nil
	items, err = f.review.ListPending(f.ctx, res.ResultID)
	require.NoError(t, err, "assistant failures never fail the listing")
	assert.Nil(t, items[0].Suggestion)
	assert.Equal(t, 2, assistant.calls)
}

func TestListPendingUnknownResult(t *testing.T) {
	f := newFixture(t)
	_, err := f.review.ListPending(f.ctx, 4242)
	assert.True(t, apperror.IsNotFound(err))
}
