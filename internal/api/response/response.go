package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pranit96/life.me/internal/model"
)

// Error writes the uniform failure body. Every failing endpoint responds
// with {"error": "..."} and a 4xx/5xx status.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"error": msg})
}

// FromError maps the error taxonomy to a status. Validation detail goes to
// the caller; persistence detail does not — the caller gets fallbackMsg and
// the detail belongs in the server-side log at the call site.
func FromError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, model.ErrValidation):
		Error(c, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, model.ErrNotFound):
		Error(c, http.StatusNotFound, "Not found")
	default:
		Error(c, http.StatusInternalServerError, fallbackMsg)
	}
}

// validationMessage strips the sentinel prefix so the wire message reads
// like "telegram ID is required" rather than "validation failed: ...".
func validationMessage(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, model.ErrValidation.Error()+": "); ok {
		return rest
	}
	return msg
}
