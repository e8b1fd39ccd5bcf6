package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdesk/quizdesk/internal/controller"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/service"
	"github.com/rs/zerolog/log"
)

// AdminResultController serves stored results, manual review and the
// dashboard figures.
type AdminResultController struct {
	resultService   service.ResultService
	protocolService service.ProtocolService
	reviewService   service.ReviewService
}

func NewAdminResultController(rs service.ResultService, ps service.ProtocolService, rvs service.ReviewService) *AdminResultController {
	return &AdminResultController{resultService: rs, protocolService: ps, reviewService: rvs}
}

func (c *AdminResultController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/results", c.ListResults)
	rg.DELETE("/results", c.DeleteResults)
	rg.GET("/results/:result_id/protocol", c.GetProtocol)
	rg.GET("/results/:result_id/pending", c.ListPending)
	rg.POST("/reviews", c.SubmitReview)
	rg.GET("/summary", c.GetSummary)
	rg.GET("/tests/:test_id/analytics", c.GetAnalytics)
}

// ListResults godoc
// @Summary (Admin) List results of a test
// @Description Paginated, searchable by fio. Sort accepts date, fio, percentage, score and status.
// @Tags Admin - Results
// @Produce json
// @Param test_id query string true "Test ID"
// @Param search query string false "Substring of the fio"
// @Param sort query string false "Sort column"
// @Param order query string false "asc or desc"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size, up to 200"
// @Success 200 {object} dto.ResultPageDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Router /admin/results [get]
func (c *AdminResultController) ListResults(ctx *gin.Context) {
	var q dto.ResultListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.BindError(ctx, "Admin ListResults", err)
		return
	}
	page, err := c.resultService.ListResults(ctx.Request.Context(), q)
	if err != nil {
		controller.RespondError(ctx, "Admin ListResults", err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// DeleteResults godoc
// @Summary (Admin) Delete results
// @Description Deletes the results and their answers in one transaction.
// @Tags Admin - Results
// @Accept json
// @Produce json
// @Param body body dto.DeleteResultsDTO true "Result IDs"
// @Success 200 {object} dto.DeletedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /admin/results [delete]
func (c *AdminResultController) DeleteResults(ctx *gin.Context) {
	var req dto.DeleteResultsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Admin DeleteResults", err)
		return
	}
	deleted, err := c.resultService.DeleteResults(ctx.Request.Context(), req.IDs)
	if err != nil {
		controller.RespondError(ctx, "Admin DeleteResults", err)
		return
	}
	log.Info().Int64("deleted", deleted).Msg("Admin DeleteResults: results deleted")
	ctx.JSON(http.StatusOK, dto.DeletedResponse{Deleted: deleted})
}

// GetProtocol godoc
// @Summary (Admin) Get the protocol of a result
// @Tags Admin - Results
// @Produce json
// @Param result_id path int true "Result ID"
// @Success 200 {object} dto.ProtocolDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid result ID"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /admin/results/{result_id}/protocol [get]
func (c *AdminResultController) GetProtocol(ctx *gin.Context) {
	resultID, ok := controller.ParseUintParam(ctx, "result_id")
	if !ok {
		return
	}
	protocol, err := c.protocolService.BuildProtocol(ctx.Request.Context(), resultID)
	if err != nil {
		controller.RespondError(ctx, "Admin GetProtocol", err)
		return
	}
	ctx.JSON(http.StatusOK, protocol)
}

// ListPending godoc
// @Summary (Admin) List answers awaiting review
// @Description Text answers of the result that still need a verdict, with an AI suggestion when enabled.
// @Tags Admin - Review
// @Produce json
// @Param result_id path int true "Result ID"
// @Success 200 {array} dto.PendingAnswerDTO
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /admin/results/{result_id}/pending [get]
func (c *AdminResultController) ListPending(ctx *gin.Context) {
	resultID, ok := controller.ParseUintParam(ctx, "result_id")
	if !ok {
		return
	}
	pending, err := c.reviewService.ListPending(ctx.Request.Context(), resultID)
	if err != nil {
		controller.RespondError(ctx, "Admin ListPending", err)
		return
	}
	ctx.JSON(http.StatusOK, pending)
}

// SubmitReview godoc
// @Summary (Admin) Submit review verdicts
// @Description All verdicts must belong to answers of one result. The result is rescored atomically.
// @Tags Admin - Review
// @Accept json
// @Produce json
// @Param body body dto.ReviewBatchDTO true "Verdicts"
// @Success 200 {object} dto.ResultSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid batch, mixed results or already reviewed"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Router /admin/reviews [post]
func (c *AdminResultController) SubmitReview(ctx *gin.Context) {
	var req dto.ReviewBatchDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Admin SubmitReview", err)
		return
	}
	summary, err := c.reviewService.SubmitBatch(ctx.Request.Context(), req.Verdicts)
	if err != nil {
		controller.RespondError(ctx, "Admin SubmitReview", err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// GetSummary godoc
// @Summary (Admin) Testing summary
// @Tags Admin - Dashboard
// @Produce json
// @Success 200 {object} dto.TestingSummaryDTO
// @Router /admin/summary [get]
func (c *AdminResultController) GetSummary(ctx *gin.Context) {
	summary, err := c.resultService.Summary(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "Admin GetSummary", err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// GetAnalytics godoc
// @Summary (Admin) Per-test analytics
// @Tags Admin - Dashboard
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.TestAnalyticsDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id}/analytics [get]
func (c *AdminResultController) GetAnalytics(ctx *gin.Context) {
	analytics, err := c.resultService.Analytics(ctx.Request.Context(), ctx.Param("test_id"))
	if err != nil {
		controller.RespondError(ctx, "Admin GetAnalytics", err)
		return
	}
	ctx.JSON(http.StatusOK, analytics)
}
