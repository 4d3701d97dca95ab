package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/dmaia/taskboard/pkg/errors"
)

// Envelope is the JSON wrapper used uniformly across endpoints.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK writes a success envelope with the given status, message and payload.
func OK(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, Envelope{
		Message: message,
		Data:    data,
	})
}

// Error writes an error envelope derived from an AppError. Unrecognized
// errors collapse to a generic 500 with no internal detail.
func Error(c *gin.Context, err error) {
	if err == nil {
		err = appErrors.ErrInternalServer
	}

	appErr := appErrors.FromError(err)
	status := appErr.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	message := appErr.Message
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	c.JSON(status, Envelope{Message: message})
}
