// Package controllers holds the gin handlers for the three store binaries and
// the gateway. Handlers validate transport-level input, delegate to a service
// or the orchestrator, and funnel every error through the shared error
// middleware.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models/dto"
)

// parseIDParam reads a positive int64 path parameter. The false return means
// a response was already written.
func parseIDParam(ctx *gin.Context, name, entity string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+entity+" ID").
			WithDetailsf("%s ID must be a positive number", entity)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

func respondBindingError(ctx *gin.Context, message string, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
