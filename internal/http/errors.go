package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotpink-connect/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

const serverErrorMessage = "Server error"

// errorStatuses traduce errores del servicio a status y cuerpo.
// Un id malformado se mantiene como 500, igual que un fallo del store.
var errorStatuses = []struct {
	target  error
	status  int
	message string
}{
	{service.ErrMessageInvalidInput, http.StatusBadRequest, "from, to, msg required"},
	{service.ErrMessageNotFound, http.StatusNotFound, "Message not found"},
	{service.ErrMessageInvalidID, http.StatusInternalServerError, serverErrorMessage},
}

func statusForError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, serverErrorMessage
}

// writeError responde con el status mapeado; el detalle solo va al log.
func writeError(c *gin.Context, logger *zap.Logger, op string, err error) {
	status, message := statusForError(err)
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", fields...)
	} else {
		logger.Warn("request rejected", fields...)
	}
	c.JSON(status, errorResponse{Error: message})
}
