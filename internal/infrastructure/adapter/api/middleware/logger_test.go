package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mocks "github.com/amirhossein-jamali/paper-trader/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func TestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should log served requests with the user and redirect", func(t *testing.T) {
		// Arrange
		log := mocks.NewMockLogger(t)
		log.On("Info", "Request served", mock.MatchedBy(func(f map[string]any) bool {
			return f["status"] == http.StatusFound &&
				f["route"] == "/buy" &&
				f["redirect"] == "/" &&
				f["user_id"] == uint64(7)
		})).Once()

		router := gin.New()
		router.Use(Logger(log))
		router.POST("/buy", func(c *gin.Context) {
			c.Set(UserIDKey, uint64(7))
			c.Redirect(http.StatusFound, "/")
		})

		// Act
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/buy", nil))
	})

	t.Run("should warn on server errors", func(t *testing.T) {
		log := mocks.NewMockLogger(t)
		log.On("Warn", "Request failed", mock.MatchedBy(func(f map[string]any) bool {
			_, hasUser := f["user_id"]
			return f["status"] == http.StatusServiceUnavailable && !hasUser
		})).Once()

		router := gin.New()
		router.Use(Logger(log))
		router.GET("/quote", func(c *gin.Context) {
			c.AbortWithStatus(http.StatusServiceUnavailable)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/quote", nil))
	})
}
