package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houssamlaqsir1/finance-app/pkg/helpers"
)

func newAuthRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetInt64(CtxUserIDKey)})
	})
	return r
}

func TestAuth_SetsUserID(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := newAuthRouter(jwt)

	token, _, err := jwt.Generate(99)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(TokenHeader, token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":99}`, w.Body.String())
}

func TestAuth_MissingToken(t *testing.T) {
	r := newAuthRouter(helpers.NewJWTManager("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"No token, authorization denied"}`, w.Body.String())
}

func TestAuth_InvalidAndExpiredCollapse(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := newAuthRouter(jwt)

	expired, _, err := helpers.NewJWTManager("test-secret", -time.Minute).Generate(99)
	require.NoError(t, err)

	for _, token := range []string{"garbage", expired} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(TokenHeader, token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		// one body for every verification failure
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Token is not valid"}`, w.Body.String())
	}
}
