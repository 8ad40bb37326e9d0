package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// HealthHandler expone los endpoints de estado y prueba de CORS.
type HealthHandler struct {
	logger *zap.Logger
	now    func() time.Time
}

type healthResponse struct {
	Message   string `json:"message"`
	CORS      string `json:"cors"`
	Timestamp string `json:"timestamp"`
}

type corsTestResponse struct {
	Message string `json:"message"`
	Origin  string `json:"origin"`
	Method  string `json:"method"`
}

func NewHealthHandler(logger *zap.Logger) *HealthHandler {
	return &HealthHandler{logger: logger, now: time.Now}
}

// Root maneja GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Message:   "🚀 HotPink Connect API is running!",
		CORS:      "enabled",
		Timestamp: h.now().UTC().Format(isoMillis),
	})
}

// CORSTest maneja GET /cors-test.
func (h *HealthHandler) CORSTest(c *gin.Context) {
	origin := c.GetHeader("Origin")
	if origin == "" {
		origin = "no-origin"
	}
	c.JSON(http.StatusOK, corsTestResponse{
		Message: "CORS is working!",
		Origin:  origin,
		Method:  c.Request.Method,
	})
}
