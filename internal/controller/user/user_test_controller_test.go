package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/quizdesk/quizdesk/config"
	"github.com/quizdesk/quizdesk/internal/controller"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/model"
	"github.com/quizdesk/quizdesk/internal/notifier"
	"github.com/quizdesk/quizdesk/internal/notifier/notifiertest"
	"github.com/quizdesk/quizdesk/internal/repository"
	"github.com/quizdesk/quizdesk/internal/service"
	"github.com/quizdesk/quizdesk/internal/session"
	"github.com/quizdesk/quizdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type harness struct {
	router *gin.Engine
	db     *gorm.DB
	events *notifiertest.Recorder
	cookie []*http.Cookie
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)

	testRepo := repository.NewTestRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	resultRepo := repository.NewResultRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	events := &notifiertest.Recorder{}
	cfg := &config.Config{Submission: config.Submission{GracePeriod: config.DefaultGracePeriod}}

	protocols := service.NewProtocolService(testRepo, questionRepo, resultRepo, answerRepo)
	catalog := service.NewUserTestService(testRepo, resultRepo)
	attempts := service.NewAttemptService(
		session.NewTracker(),
		catalog,
		service.NewTestDeliveryService(testRepo, questionRepo),
		service.NewTestSubmissionService(db, testRepo, questionRepo, resultRepo, protocols, events, cfg),
	)

	router := gin.New()
	router.Use(sessions.Sessions("quizdesk_session", cookie.NewStore([]byte("test-secret"))))
	NewUserTestController(catalog, attempts, protocols).RegisterRoutes(router.Group("/api/v1"))
	return &harness{router: router, db: db, events: events}
}

// do sends the request with the cookies of the previous response.
func (h *harness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range h.cookie {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		h.cookie = cookies
	}
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func seedChoiceTest(t *testing.T, db *gorm.DB) (model.Test, model.Question) {
	t.Helper()
	test := testutil.SeedTest(t, db, "Fire safety", 20, 10, 70)
	q := testutil.SeedChoice(t, db, test.ID, "Which extinguishers suit electrical fires?",
		[]string{"a", "b", "c"}, []string{"CO2", "Powder", "Water"}, []string{"a", "b"})
	return test, q
}

func TestSubmitWithoutAttemptIsRejected(t *testing.T) {
	h := newHarness(t)
	test, q := seedChoiceTest(t, h.db)

	w := h.do(t, http.MethodPost, "/api/v1/tests/"+test.ID+"/submit", dto.SubmitTestDTO{
		FIO:     "Ivanov Ivan",
		Answers: []dto.UserAnswerDTO{{QuestionID: q.ID, AnswerIDs: []string{"a", "b"}}},
	})

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, controller.CodeRestartRequired, decode[dto.ErrorResponse](t, w).Code)

	var count int64
	require.NoError(t, h.db.Model(&model.Result{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, h.events.Events())
}

func TestQuestionsWithoutAttemptIsRejected(t *testing.T) {
	h := newHarness(t)
	test, _ := seedChoiceTest(t, h.db)

	w := h.do(t, http.MethodGet, "/api/v1/tests/"+test.ID+"/questions", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFullAttemptFlow(t *testing.T) {
	h := newHarness(t)
	test, q := seedChoiceTest(t, h.db)

	w := h.do(t, http.MethodPost, "/api/v1/tests/"+test.ID+"/start", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	started := decode[dto.AttemptStartedDTO](t, w)
	assert.Equal(t, 10, started.DurationMinutes)

	w = h.do(t, http.MethodGet, "/api/v1/tests/"+test.ID+"/questions", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	delivered := decode[dto.DeliveredTestDTO](t, w)
	require.Len(t, delivered.Questions, 1)
	assert.NotContains(t, w.Body.String(), "correct")

	w = h.do(t, http.MethodPost, "/api/v1/tests/"+test.ID+"/submit", dto.SubmitTestDTO{
		FIO:     "Ivanov Ivan",
		Answers: []dto.UserAnswerDTO{{QuestionID: q.ID, AnswerIDs: []string{"b", "a"}}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[dto.SubmissionResultDTO](t, w)
	assert.Equal(t, model.ResultStatusCompleted, res.Status)
	require.NotNil(t, res.Summary)
	assert.True(t, res.Summary.Passed)
	assert.Equal(t, 100, res.Summary.Percentage)

	// The attempt ended with the submission.
	w = h.do(t, http.MethodPost, "/api/v1/tests/"+test.ID+"/submit", dto.SubmitTestDTO{FIO: "Ivanov Ivan"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/tests/"+test.ID+"/last-result?fio=Ivanov%20Ivan", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	protocol := decode[dto.ProtocolDTO](t, w)
	assert.Equal(t, res.ResultID, protocol.Summary.ResultID)

	w = h.do(t, http.MethodGet, "/api/v1/tests?fio=Ivanov%20Ivan", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tests := decode[[]dto.PublicTestDTO](t, w)
	require.Len(t, tests, 1)
	require.NotNil(t, tests[0].PassedStatus)
	assert.True(t, *tests[0].PassedStatus)

	require.Len(t, h.events.Events(), 1)
	assert.Equal(t, notifier.EventNewResult, h.events.Events()[0].Name)
}

func TestAbandonAttempt(t *testing.T) {
	h := newHarness(t)
	test, _ := seedChoiceTest(t, h.db)

	w := h.do(t, http.MethodDelete, "/api/v1/tests/"+test.ID+"/attempt", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	require.Equal(t, http.StatusOK, h.do(t, http.MethodPost, "/api/v1/tests/"+test.ID+"/start", nil).Code)
	require.Equal(t, http.StatusOK, h.do(t, http.MethodDelete, "/api/v1/tests/"+test.ID+"/attempt", nil).Code)

	w = h.do(t, http.MethodGet, "/api/v1/tests/"+test.ID+"/questions", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStartUnknownTest(t *testing.T) {
	h := newHarness(t)
	w := h.do(t, http.MethodPost, "/api/v1/tests/missing/start", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitRequiresFIO(t *testing.T) {
	h := newHarness(t)
	test, _ := seedChoiceTest(t, h.db)
	require.Equal(t, http.StatusOK, h.do(t, http.MethodPost, "/api/v1/tests/"+test.ID+"/start", nil).Code)

	w := h.do(t, http.MethodPost, "/api/v1/tests/"+test.ID+"/submit", map[string]any{"answers": []any{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLastResult(t *testing.T) {
	h := newHarness(t)
	test, _ := seedChoiceTest(t, h.db)

	w := h.do(t, http.MethodGet, "/api/v1/tests/"+test.ID+"/last-result", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/tests/"+test.ID+"/last-result?fio=Nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
