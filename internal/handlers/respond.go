package handlers

import (
	"net/http"

	"github.com/dimitrije/recipebox-api/internal/middleware"
	"github.com/dimitrije/recipebox-api/internal/services"
	"github.com/dimitrije/recipebox-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

const (
	msgNotFound      = "Not found"
	msgUserNotFound  = "User not found"
	msgNotAuthorized = "User not authorized"
	msgInvalidBody   = "Invalid request body"
)

func message(c *drift.Context, status int, msg string) {
	_ = c.JSON(status, dto.MessageResponse{Msg: msg})
}

func validationFailed(c *drift.Context, errs ...dto.FieldError) {
	_ = c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: errs})
}

func invalidBody(c *drift.Context) {
	validationFailed(c, dto.FieldError{Msg: msgInvalidBody, Location: "body"})
}

// serverError logs err and answers with a bare text body.
func serverError(c *drift.Context, logger *zap.Logger, err error) {
	logger.Error("request failed",
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", middleware.GetRequestID(c)))

	c.Response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.Response.WriteHeader(http.StatusInternalServerError)
	_, _ = c.Response.Write([]byte("Server Error"))
	c.Abort()
}

func updateAck(result services.UpdateResult) dto.UpdateAck {
	return dto.UpdateAck{Matched: result.Matched, Modified: result.Modified, OK: 1}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
