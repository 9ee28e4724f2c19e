package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connecthub/connecthub-go/internal/dto/response"
	apperrors "github.com/connecthub/connecthub-go/pkg/errors"
)

const msgValidationFailed = "validation failed"

// respondError writes the failure envelope for a service error, using the
// status and message carried by the error itself.
func respondError(ctx *gin.Context, err error) {
	ctx.JSON(apperrors.GetStatus(err), response.NewError[any](apperrors.GetMessage(err)))
}

// respondValidation writes a 400 for a request-binding failure.
func respondValidation(ctx *gin.Context, err error) {
	msg := msgValidationFailed
	if err != nil && err.Error() != "" {
		msg = msgValidationFailed + ": " + err.Error()
	}
	ctx.JSON(http.StatusBadRequest, response.NewError[any](msg))
}
