package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, "success", data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, "success", data, message)
}

func RespondError(c *gin.Context, code int, message string) {
	respond(c, code, "error", nil, message)
}

func respond(c *gin.Context, code int, status string, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  status,
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

// HandleServiceError maps sentinel service errors onto HTTP responses.
// Anything unrecognised is logged and reported as a 500 without details.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUsernameTaken):
		RespondError(c, http.StatusConflict, "Username already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, ErrWeakPassword):
		RespondError(c, http.StatusBadRequest, "Password must be at least 6 characters")
	case errors.Is(err, ErrInvalidUsername):
		RespondError(c, http.StatusBadRequest, "Username must be between 3 and 50 characters")
	case errors.Is(err, ErrMissingFields):
		RespondError(c, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, ErrPhotoMissing):
		RespondError(c, http.StatusBadRequest, "No photo uploaded")
	case errors.Is(err, ErrPhotoTooLarge):
		RespondError(c, http.StatusRequestEntityTooLarge, photoTooLargeMessage(err))
	case errors.Is(err, ErrUnsupportedMedia):
		RespondError(c, http.StatusBadRequest, "Only JPEG, PNG, GIF and WebP images are allowed")
	case errors.Is(err, ErrMonasteryNotFound):
		RespondError(c, http.StatusNotFound, "Monastery not found")
	case errors.Is(err, ErrSlideshowEmpty):
		RespondError(c, http.StatusNotFound, "No slides configured")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unhandled service error", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func photoTooLargeMessage(err error) string {
	var sizeErr *PhotoSizeError
	if !errors.As(err, &sizeErr) || sizeErr.Limit <= 0 {
		return "Photo exceeds the upload size limit"
	}
	return fmt.Sprintf("Photo must be %s or smaller", humanize.IBytes(uint64(sizeErr.Limit)))
}

