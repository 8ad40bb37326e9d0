package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS, PATCH"
	corsMaxAge       = "86400"
)

// NewRouter configura el router de Gin con middlewares y rutas del chat.
func NewRouter(
	logger *zap.Logger,
	healthH *HealthHandler,
	chatH *ChatHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares: logging, recovery, CORS (corta los preflight) y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware(logger), jsonContentTypeMiddleware())

	r.GET("/", healthH.Root)
	r.GET("/cors-test", healthH.CORSTest)

	chat := r.Group("/chat")
	chat.POST("", chatH.CreateMessage)
	chat.GET("", chatH.ListMessages)
	chat.GET("/:user", chatH.ListUserMessages)
	chat.GET("/id/:id", chatH.GetMessage)
	chat.DELETE("/:id", chatH.DeleteMessage)

	notFound := routeNotFoundHandler(logger)
	r.NoRoute(notFound)
	r.NoMethod(notFound)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// corsMiddleware abre CORS a cualquier origen y responde los preflight sin rutear.
func corsMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		h.Set("Access-Control-Allow-Headers", "*")
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Max-Age", corsMaxAge)

		if c.Request.Method == http.MethodOptions {
			logger.Info("preflight request received", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

func routeNotFoundHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.Info("route not found",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.RequestURI()),
		)
		c.JSON(http.StatusNotFound, errorResponse{Error: "Route not found"})
	}
}
