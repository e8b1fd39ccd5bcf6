package user

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/quizdesk/quizdesk/internal/controller"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/service"
	"github.com/rs/zerolog/log"
)

// UserTestController serves the test-taker API. Attempts live in the
// caller's cookie session.
type UserTestController struct {
	userTestService service.UserTestService
	attemptService  service.AttemptService
	protocolService service.ProtocolService
}

func NewUserTestController(uts service.UserTestService, as service.AttemptService, ps service.ProtocolService) *UserTestController {
	return &UserTestController{
		userTestService: uts,
		attemptService:  as,
		protocolService: ps,
	}
}

func (c *UserTestController) RegisterRoutes(rg *gin.RouterGroup) {
	tests := rg.Group("/tests")
	tests.GET("", c.GetAllTests)
	tests.POST("/:test_id/start", c.StartAttempt)
	tests.DELETE("/:test_id/attempt", c.AbandonAttempt)
	tests.GET("/:test_id/questions", c.GetQuestions)
	tests.POST("/:test_id/submit", c.SubmitTest)
	tests.GET("/:test_id/last-result", c.GetLastResult)
}

// GetAllTests godoc
// @Summary (User) List active tests
// @Description Lists active tests. When 'fio' is given each test carries passedStatus for that person.
// @Tags User - Tests & Attempts
// @Produce json
// @Param fio query string false "Full name of the test-taker"
// @Success 200 {array} dto.PublicTestDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.userTestService.ListActive(ctx.Request.Context(), ctx.Query("fio"))
	if err != nil {
		controller.RespondError(ctx, "User GetAllTests", err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// StartAttempt godoc
// @Summary (User) Start an attempt
// @Description Records the attempt start in the session. Starting again restarts the clock.
// @Tags User - Tests & Attempts
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.AttemptStartedDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found or inactive"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id}/start [post]
func (c *UserTestController) StartAttempt(ctx *gin.Context) {
	testID := ctx.Param("test_id")
	started, err := c.attemptService.Start(ctx.Request.Context(), sessions.Default(ctx), testID)
	if err != nil {
		controller.RespondError(ctx, "User StartAttempt", err)
		return
	}
	ctx.JSON(http.StatusOK, started)
}

// AbandonAttempt godoc
// @Summary (User) Abandon the current attempt
// @Tags User - Tests & Attempts
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "No attempt in progress"
// @Router /tests/{test_id}/attempt [delete]
func (c *UserTestController) AbandonAttempt(ctx *gin.Context) {
	testID := ctx.Param("test_id")
	if err := c.attemptService.Abandon(ctx.Request.Context(), sessions.Default(ctx), testID); err != nil {
		controller.RespondError(ctx, "User AbandonAttempt", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Attempt abandoned"})
}

// GetQuestions godoc
// @Summary (User) Get the questions of the current attempt
// @Description Returns a fresh random sample of questions. Correct answers are never included.
// @Tags User - Tests & Attempts
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.DeliveredTestDTO
// @Failure 403 {object} dto.ErrorResponse "Attempt not started, code restart_required"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id}/questions [get]
func (c *UserTestController) GetQuestions(ctx *gin.Context) {
	testID := ctx.Param("test_id")
	delivered, err := c.attemptService.Questions(ctx.Request.Context(), sessions.Default(ctx), testID)
	if err != nil {
		controller.RespondError(ctx, "User GetQuestions", err)
		return
	}
	ctx.JSON(http.StatusOK, delivered)
}

// SubmitTest godoc
// @Summary (User) Submit answers
// @Description Scores the submission and stores the result. Text answers leave the result pending review.
// @Tags User - Tests & Attempts
// @Accept json
// @Produce json
// @Param test_id path string true "Test ID"
// @Param submission body dto.SubmitTestDTO true "Full name and answers"
// @Success 200 {object} dto.SubmissionResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Attempt not started or time expired, code restart_required"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id}/submit [post]
func (c *UserTestController) SubmitTest(ctx *gin.Context) {
	testID := ctx.Param("test_id")

	var req dto.SubmitTestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "User SubmitTest", err)
		return
	}

	res, err := c.attemptService.Submit(ctx.Request.Context(), sessions.Default(ctx), testID, req)
	if err != nil {
		controller.RespondError(ctx, "User SubmitTest", err)
		return
	}
	log.Info().Str("testID", testID).Uint("resultID", res.ResultID).Str("status", res.Status).Msg("User SubmitTest: result stored")
	ctx.JSON(http.StatusOK, res)
}

// GetLastResult godoc
// @Summary (User) Get the last passed result
// @Description Returns the protocol of the latest passed result of the person for the test.
// @Tags User - Tests & Attempts
// @Produce json
// @Param test_id path string true "Test ID"
// @Param fio query string true "Full name of the test-taker"
// @Success 200 {object} dto.ProtocolDTO
// @Failure 400 {object} dto.ErrorResponse "fio is required"
// @Failure 404 {object} dto.ErrorResponse "No passed result"
// @Router /tests/{test_id}/last-result [get]
func (c *UserTestController) GetLastResult(ctx *gin.Context) {
	testID := ctx.Param("test_id")
	fio := strings.TrimSpace(ctx.Query("fio"))
	if fio == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "fio is required"})
		return
	}

	protocol, err := c.protocolService.FindLastPassedProtocol(ctx.Request.Context(), testID, fio)
	if err != nil {
		controller.RespondError(ctx, "User GetLastResult", err)
		return
	}
	if protocol == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No passed result for this test"})
		return
	}
	ctx.JSON(http.StatusOK, protocol)
}
