package service

import (
	"context"
	"testing"
	"time"

	"github.com/quizdesk/quizdesk/config"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/model"
	"github.com/quizdesk/quizdesk/internal/notifier/notifiertest"
	"github.com/quizdesk/quizdesk/internal/repository"
	"github.com/quizdesk/quizdesk/internal/session"
	"github.com/quizdesk/quizdesk/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubAssistant struct {
	suggestion *dto.ReviewSuggestionDTO
	err        error
	calls      int
}

func (a *stubAssistant) Enabled() bool { return true }
func (a *stubAssistant) Close() error  { return nil }
func (a *stubAssistant) Suggest(context.Context, string, string) (*dto.ReviewSuggestionDTO, error) {
	a.calls++
	return a.suggestion, a.err
}

type fixture struct {
	ctx       context.Context
	db        *gorm.DB
	now       time.Time
	events    *notifiertest.Recorder
	tracker   *session.Tracker
	testRepo  repository.TestRepository
	questions repository.QuestionRepository
	results   repository.ResultRepository
	answers   repository.AnswerRepository

	protocols  ProtocolService
	delivery   *testDeliveryService
	submission *testSubmissionService
	review     *reviewService
	admin      AdminTestService
	authoring  QuestionService
	dashboard  ResultService
	catalog    UserTestService
	attempts   AttemptService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	f := &fixture{
		ctx:       context.Background(),
		db:        db,
		now:       time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC),
		events:    &notifiertest.Recorder{},
		testRepo:  repository.NewTestRepository(db),
		questions: repository.NewQuestionRepository(db),
		results:   repository.NewResultRepository(db),
		answers:   repository.NewAnswerRepository(db),
	}
	clock := func() time.Time { return f.now }
	f.tracker = session.NewTrackerWithClock(clock)

	f.protocols = NewProtocolService(f.testRepo, f.questions, f.results, f.answers)
	f.delivery = NewTestDeliveryService(f.testRepo, f.questions).(*testDeliveryService)
	cfg := &config.Config{Submission: config.Submission{GracePeriod: config.DefaultGracePeriod}}
	f.submission = NewTestSubmissionService(db, f.testRepo, f.questions, f.results, f.protocols, f.events, cfg).(*testSubmissionService)
	f.submission.now = clock
	f.review = NewReviewService(db, f.testRepo, f.questions, f.results, f.answers, nil, f.events).(*reviewService)
	f.admin = NewAdminTestService(f.testRepo, f.results, db)
	f.authoring = NewQuestionService(f.testRepo, f.questions)
	f.dashboard = NewResultService(f.testRepo, f.results, f.answers)
	f.catalog = NewUserTestService(f.testRepo, f.results)
	f.attempts = NewAttemptService(f.tracker, f.catalog, f.delivery, f.submission)
	return f
}

func (f *fixture) submit(t *testing.T, testID, fio string, answers ...dto.UserAnswerDTO) *dto.SubmissionResultDTO {
	t.Helper()
	res, err := f.submission.SubmitResult(f.ctx, SubmitCommand{
		TestID:    testID,
		FIO:       fio,
		Answers:   answers,
		StartedAt: f.now.Add(-time.Minute),
	})
	require.NoError(t, err)
	return res
}

func (f *fixture) result(t *testing.T, id uint) *model.Result {
	t.Helper()
	r, err := f.results.FindByID(f.ctx, id)
	require.NoError(t, err)
	return r
}

func answer(q model.Question, values ...string) dto.UserAnswerDTO {
	return dto.UserAnswerDTO{QuestionID: q.ID, AnswerIDs: values}
}

func boolPtr(b bool) *bool { return &b }

// safetyTest is a test with one choice question (two of three options
// correct) and one text question, passing at 70%.
func safetyTest(t *testing.T, db *gorm.DB) (model.Test, model.Question, model.Question) {
	t.Helper()
	test := testutil.SeedTest(t, db, "Fire safety", 20, 10, 70)
	choice := testutil.SeedChoice(t, db, test.ID, "Which extinguishers suit electrical fires?",
		[]string{"a", "b", "c"}, []string{"CO2", "Powder", "Water"}, []string{"a", "b"})
	text := testutil.SeedText(t, db, test.ID, "Describe the evacuation route.")
	return test, choice, text
}
