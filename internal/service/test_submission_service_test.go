package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quizdesk/quizdesk/internal/apperror"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/model"
	"github.com/quizdesk/quizdesk/internal/notifier"
	"github.com/quizdesk/quizdesk/internal/scoring"
	"github.com/quizdesk/quizdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitBlankTextCompletes(t *testing.T) {
	f := newFixture(t)
	test, choice, text := safetyTest(t, f.db)

	res := f.submit(t, test.ID, "Ivanov I.I.", answer(choice, "b", "a"), answer(text, "  "))

	assert.Equal(t, model.ResultStatusCompleted, res.Status)
	require.NotNil(t, res.Summary)
	assert.Equal(t, 1, res.Summary.Score)
	assert.Equal(t, 2, res.Summary.Total)
	assert.Equal(t, 50, res.Summary.Percentage)
	assert.False(t, res.Summary.Passed)
	assert.Equal(t, 70, res.Summary.PassingScore)
	assert.Len(t, res.Protocol, 2)

	stored := f.result(t, res.ResultID)
	assert.Equal(t, 50, stored.Percentage)
	assert.Equal(t, model.ResultStatusCompleted, stored.Status)

	answers, err := f.answers.FindByResultID(f.ctx, res.ResultID)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	for _, a := range answers {
		assert.Equal(t, string(scoring.ReviewAuto), a.ReviewStatus)
		require.NotNil(t, a.IsCorrect)
	}
}

func TestSubmitTextGoesToReview(t *testing.T) {
	f := newFixture(t)
	test, choice, text := safetyTest(t, f.db)

	res := f.submit(t, test.ID, "Petrov P.P.", answer(choice, "a", "b"), answer(text, "Through the east stairwell"))

	assert.Equal(t, model.ResultStatusPendingReview, res.Status)
	assert.NotZero(t, res.ResultID)
	assert.Nil(t, res.Summary, "score must not be revealed while pending")
	assert.Empty(t, res.Protocol)

	stored := f.result(t, res.ResultID)
	assert.Equal(t, 0, stored.Percentage)
	assert.False(t, stored.Passed)
	assert.Equal(t, model.ResultStatusPendingReview, stored.Status)
	assert.Equal(t, 1, stored.Score)
	assert.Equal(t, 2, stored.Total)

	pending, err := f.answers.FindPendingByResultID(f.ctx, res.ResultID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Nil(t, pending[0].IsCorrect)
}

func TestSubmitPassThreshold(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		percent int
		passed  bool
	}{
		{name: "exactly at threshold", correct: 7, percent: 70, passed: true},
		{name: "below threshold", correct: 6, percent: 60, passed: false},
		{name: "all correct", correct: 10, percent: 100, passed: true},
		{name: "none correct", correct: 0, percent: 0, passed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			test := testutil.SeedTest(t, f.db, "Ten questions", 10, 10, 70)
			var answers []dto.UserAnswerDTO
			for i := 0; i < 10; i++ {
				q := testutil.SeedChoice(t, f.db, test.ID, "q", []string{"x", "y"}, []string{"X", "Y"}, []string{"x"})
				pick := "y"
				if i < tt.correct {
					pick = "x"
				}
				answers = append(answers, answer(q, pick))
			}

			res := f.submit(t, test.ID, "Sidorov S.S.", answers...)
			require.NotNil(t, res.Summary)
			assert.Equal(t, tt.correct, res.Summary.Score)
			assert.Equal(t, 10, res.Summary.Total)
			assert.Equal(t, tt.percent, res.Summary.Percentage)
			assert.Equal(t, tt.passed, res.Summary.Passed)
			assert.LessOrEqual(t, res.Summary.Score, res.Summary.Total)
		})
	}
}

func TestSubmitTimeLimit(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		wantErr bool
	}{
		{name: "within limit", elapsed: 9 * time.Minute},
		{name: "inside grace period", elapsed: 10*time.Minute + 4*time.Second},
		{name: "after grace period", elapsed: 10*time.Minute + 6*time.Second, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			test, choice, _ := safetyTest(t, f.db)

			_, err := f.submission.SubmitResult(f.ctx, SubmitCommand{
				TestID:    test.ID,
				FIO:       "Late L.L.",
				Answers:   []dto.UserAnswerDTO{answer(choice, "a", "b")},
				StartedAt: f.now.Add(-tt.elapsed),
			})
			n, countErr := f.results.CountByStatus(f.ctx, "")
			require.NoError(t, countErr)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperror.ErrTimeExpired)
				assert.True(t, apperror.IsClientState(err))
				assert.Zero(t, n, "late submissions are not stored")
				assert.Empty(t, f.events.Events())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(1), n)
		})
	}
}

func TestSubmitSkipsForeignQuestions(t *testing.T) {
	f := newFixture(t)
	test, choice, _ := safetyTest(t, f.db)
	other := testutil.SeedTest(t, f.db, "Other", 5, 5, 50)
	foreign := testutil.SeedChoice(t, f.db, other.ID, "foreign", []string{"a", "b"}, []string{"A", "B"}, []string{"a"})

	res := f.submit(t, test.ID, "Ivanov I.I.",
		answer(choice, "a", "b"),
		answer(foreign, "a"),
		dto.UserAnswerDTO{QuestionID: uuid.NewString(), AnswerIDs: []string{"a"}},
		answer(choice, "c"),
	)

	require.NotNil(t, res.Summary)
	assert.Equal(t, 1, res.Summary.Total)
	assert.Equal(t, 1, res.Summary.Score)
	assert.Equal(t, 100, res.Summary.Percentage)
}

func TestSubmitWithoutAnswers(t *testing.T) {
	f := newFixture(t)
	test, _, _ := safetyTest(t, f.db)

	res := f.submit(t, test.ID, "Empty E.E.")
	require.NotNil(t, res.Summary)
	assert.Equal(t, 0, res.Summary.Total)
	assert.Equal(t, 0, res.Summary.Percentage)
	assert.False(t, res.Summary.Passed)
}

func TestSubmitMatchOrderMatters(t *testing.T) {
	f := newFixture(t)
	test := testutil.SeedTest(t, f.db, "Capitals", 5, 5, 50)
	q := testutil.SeedMatch(t, f.db, test.ID, "Match countries", []string{"France", "Spain"}, []string{"Paris", "Madrid"})

	swapped := f.submit(t, test.ID, "A", answer(q, "Madrid", "Paris"))
	assert.Equal(t, 0, swapped.Summary.Score)

	right := f.submit(t, test.ID, "B", answer(q, "Paris", "Madrid"))
	assert.Equal(t, 1, right.Summary.Score)
	require.Len(t, right.Protocol, 1)
	assert.Equal(t, []string{"France", "Spain"}, right.Protocol[0].MatchPrompts)
}

func TestSubmitEmitsAfterCommit(t *testing.T) {
	f := newFixture(t)
	test, choice, _ := safetyTest(t, f.db)

	res := f.submit(t, test.ID, " Ivanov I.I. ", answer(choice, "a"))

	events := f.events.Events()
	require.Len(t, events, 1)
	assert.Equal(t, notifier.EventNewResult, events[0].Name)
	payload, ok := events[0].Payload.(notifier.NewResultPayload)
	require.True(t, ok)
	assert.Equal(t, notifier.NewResultPayload{TestID: test.ID, TestName: "Fire safety", FIO: "Ivanov I.I.", ID: res.ResultID}, payload)
}

type panickingPublisher struct{}

func (panickingPublisher) Emit(string, any) { panic("socket closed") }

func TestSubmitSurvivesPublisherFailure(t *testing.T) {
	f := newFixture(t)
	f.submission.publisher = panickingPublisher{}
	test, choice, _ := safetyTest(t, f.db)

	res := f.submit(t, test.ID, "Ivanov I.I.", answer(choice, "a", "b"))
	assert.Equal(t, model.ResultStatusCompleted, res.Status)
	assert.Equal(t, 100, f.result(t, res.ResultID).Percentage)
}

func TestSubmitErrors(t *testing.T) {
	f := newFixture(t)
	test, choice, _ := safetyTest(t, f.db)

	_, err := f.submission.SubmitResult(f.ctx, SubmitCommand{TestID: uuid.NewString(), FIO: "X", StartedAt: f.now})
	assert.True(t, apperror.IsNotFound(err))

	_, err = f.submission.SubmitResult(f.ctx, SubmitCommand{TestID: test.ID, FIO: "   ", StartedAt: f.now,
		Answers: []dto.UserAnswerDTO{answer(choice, "a")}})
	assert.True(t, apperror.IsValidation(err))
}
