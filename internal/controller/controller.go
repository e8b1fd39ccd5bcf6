// Package controller holds the helpers shared by the admin and user
// controllers.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quizdesk/quizdesk/internal/apperror"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/rs/zerolog/log"
)

const CodeRestartRequired = "restart_required"

// RespondError maps a service error onto a status code. Unknown errors are
// logged and hidden behind a generic message.
func RespondError(ctx *gin.Context, op string, err error) {
	switch {
	case apperror.IsClientState(err):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error(), Code: CodeRestartRequired})
	case apperror.IsNotFound(err):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case apperror.IsValidation(err):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(op + ": unexpected error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal error, try again"})
	}
}

func BindError(ctx *gin.Context, op string, err error) {
	log.Warn().Err(err).Msg(op + ": failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

// ParseUintParam reads a numeric path parameter, answering 400 when it is
// malformed.
func ParseUintParam(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(v), true
}
