package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cnlearn/cnlearn/internal/auth"
)

// RouterConfig carries the dependencies the router wires into controllers.
type RouterConfig struct {
	AuthService   *auth.Service
	SearchService SearchService
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger())
	router.Use(gin.Recovery())

	authController := NewAuthController(cfg.AuthService)
	router.POST("/users/register", authController.Register)
	router.POST("/login/access-token", authController.Login)
	router.GET("/login/me", auth.Middleware(cfg.AuthService), authController.Me)

	vocabularyController := NewVocabularyController(cfg.SearchService)
	vocabulary := router.Group("/vocabulary")
	vocabulary.GET("/get-words", vocabularyController.GetWords)
	vocabulary.GET("/get-characters", vocabularyController.GetCharacters)
	vocabulary.GET("/search-phrase", vocabularyController.SearchPhrase)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}

// RequestLogger logs one line per request with method, path, status and
// latency.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Info("request")
	}
}
