package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdesk/quizdesk/internal/controller"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/service"
	"github.com/rs/zerolog/log"
)

// AdminTestController manages tests, their settings and their questions.
type AdminTestController struct {
	adminTestService service.AdminTestService
	questionService  service.QuestionService
}

func NewAdminTestController(adminTestService service.AdminTestService, questionService service.QuestionService) *AdminTestController {
	return &AdminTestController{adminTestService: adminTestService, questionService: questionService}
}

func (c *AdminTestController) RegisterRoutes(rg *gin.RouterGroup) {
	tests := rg.Group("/tests")
	tests.POST("", c.CreateTest)
	tests.GET("", c.ListTests)
	tests.PATCH("/:test_id", c.RenameTest)
	tests.PATCH("/:test_id/status", c.SetStatus)
	tests.DELETE("/:test_id", c.DeleteTest)
	tests.GET("/:test_id/settings", c.GetSettings)
	tests.PUT("/:test_id/settings", c.SaveSettings)
	tests.GET("/:test_id/questions", c.ListQuestions)
	tests.POST("/:test_id/questions", c.CreateQuestion)

	rg.DELETE("/questions/:question_id", c.DeleteQuestion)
}

// CreateTest godoc
// @Summary (Admin) Create a test
// @Description Creates an inactive test with default settings (20 questions, 10 minutes, 70% to pass).
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param test_data body dto.CreateTestDTO true "Name and optional description"
// @Success 201 {object} dto.TestAdminDTO "Test created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.CreateTestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Admin CreateTest", err)
		return
	}

	test, err := c.adminTestService.CreateTest(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateTest", err)
		return
	}
	log.Info().Str("testID", test.ID).Str("name", test.Name).Msg("Admin CreateTest: test created")
	ctx.JSON(http.StatusCreated, test)
}

// ListTests godoc
// @Summary (Admin) List tests with statistics
// @Tags Admin - Tests
// @Produce json
// @Success 200 {array} dto.TestAdminDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [get]
func (c *AdminTestController) ListTests(ctx *gin.Context) {
	tests, err := c.adminTestService.ListTests(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "Admin ListTests", err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// RenameTest godoc
// @Summary (Admin) Rename a test
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param test_id path string true "Test ID"
// @Param body body dto.RenameTestDTO true "New name"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id} [patch]
func (c *AdminTestController) RenameTest(ctx *gin.Context) {
	var req dto.RenameTestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Admin RenameTest", err)
		return
	}
	if err := c.adminTestService.RenameTest(ctx.Request.Context(), ctx.Param("test_id"), req.Name); err != nil {
		controller.RespondError(ctx, "Admin RenameTest", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Test renamed"})
}

// SetStatus godoc
// @Summary (Admin) Activate or deactivate a test
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param test_id path string true "Test ID"
// @Param body body dto.TestStatusDTO true "Desired state"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id}/status [patch]
func (c *AdminTestController) SetStatus(ctx *gin.Context) {
	var req dto.TestStatusDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Admin SetStatus", err)
		return
	}
	if err := c.adminTestService.SetStatus(ctx.Request.Context(), ctx.Param("test_id"), *req.IsActive); err != nil {
		controller.RespondError(ctx, "Admin SetStatus", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Test status updated"})
}

// DeleteTest godoc
// @Summary (Admin) Delete a test
// @Description Deletes the test with its questions, settings and every stored result.
// @Tags Admin - Tests
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id} [delete]
func (c *AdminTestController) DeleteTest(ctx *gin.Context) {
	testID := ctx.Param("test_id")
	if err := c.adminTestService.DeleteTest(ctx.Request.Context(), testID); err != nil {
		controller.RespondError(ctx, "Admin DeleteTest", err)
		return
	}
	log.Info().Str("testID", testID).Msg("Admin DeleteTest: test deleted")
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Test deleted"})
}

// GetSettings godoc
// @Summary (Admin) Get test settings
// @Tags Admin - Tests
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.TestSettingsDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id}/settings [get]
func (c *AdminTestController) GetSettings(ctx *gin.Context) {
	settings, err := c.adminTestService.GetSettings(ctx.Request.Context(), ctx.Param("test_id"))
	if err != nil {
		controller.RespondError(ctx, "Admin GetSettings", err)
		return
	}
	ctx.JSON(http.StatusOK, settings)
}

// SaveSettings godoc
// @Summary (Admin) Save test settings
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param test_id path string true "Test ID"
// @Param body body dto.TestSettingsDTO true "Settings"
// @Success 200 {object} dto.TestSettingsDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id}/settings [put]
func (c *AdminTestController) SaveSettings(ctx *gin.Context) {
	var req dto.TestSettingsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Admin SaveSettings", err)
		return
	}
	settings, err := c.adminTestService.SaveSettings(ctx.Request.Context(), ctx.Param("test_id"), req)
	if err != nil {
		controller.RespondError(ctx, "Admin SaveSettings", err)
		return
	}
	ctx.JSON(http.StatusOK, settings)
}

// ListQuestions godoc
// @Summary (Admin) List the questions of a test
// @Tags Admin - Questions
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {array} dto.QuestionAdminDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id}/questions [get]
func (c *AdminTestController) ListQuestions(ctx *gin.Context) {
	questions, err := c.questionService.ListQuestions(ctx.Request.Context(), ctx.Param("test_id"))
	if err != nil {
		controller.RespondError(ctx, "Admin ListQuestions", err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary (Admin) Add a question to a test
// @Description Checkbox questions need options and correct keys, match questions need prompts and answers of equal length, text questions need neither.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param test_id path string true "Test ID"
// @Param body body dto.CreateQuestionDTO true "Question"
// @Success 201 {object} dto.QuestionAdminDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid question"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id}/questions [post]
func (c *AdminTestController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Admin CreateQuestion", err)
		return
	}
	question, err := c.questionService.CreateQuestion(ctx.Request.Context(), ctx.Param("test_id"), req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateQuestion", err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Tags Admin - Questions
// @Produce json
// @Param question_id path string true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{question_id} [delete]
func (c *AdminTestController) DeleteQuestion(ctx *gin.Context) {
	if err := c.questionService.DeleteQuestion(ctx.Request.Context(), ctx.Param("question_id")); err != nil {
		controller.RespondError(ctx, "Admin DeleteQuestion", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted"})
}
