package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(rdb *redis.Client, max int, window time.Duration, keyFn KeyFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(rdb, max, window, keyFn))
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	r.GET("/limited", ok)
	r.OPTIONS("/limited", ok)
	return r
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func hit(r *gin.Engine, method string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/limited", nil)
	req.RemoteAddr = "10.1.2.3:4567"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_UnderLimit(t *testing.T) {
	r := newLimitedRouter(newTestRedis(t), 2, time.Minute, KeyByIP())

	first := hit(r, http.MethodGet)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	second := hit(r, http.MethodGet)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, second.Header().Get("X-RateLimit-Reset"))
}

func TestRateLimit_OverLimit(t *testing.T) {
	r := newLimitedRouter(newTestRedis(t), 2, time.Minute, KeyByIP())

	hit(r, http.MethodGet)
	hit(r, http.MethodGet)
	third := hit(r, http.MethodGet)

	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.JSONEq(t, `{"message":"Too many requests"}`, third.Body.String())
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
}

func TestRateLimit_WindowResets(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	r := newLimitedRouter(rdb, 1, time.Minute, KeyByIP())

	require.Equal(t, http.StatusOK, hit(r, http.MethodGet).Code)
	require.Equal(t, http.StatusTooManyRequests, hit(r, http.MethodGet).Code)

	// the counter key expires with the window
	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, hit(r, http.MethodGet).Code)
}

func TestRateLimit_OptionsBypass(t *testing.T) {
	r := newLimitedRouter(newTestRedis(t), 1, time.Minute, KeyByIP())

	// preflight requests never count against the window
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(r, http.MethodOptions).Code)
	}
	assert.Equal(t, http.StatusOK, hit(r, http.MethodGet).Code)
}

func TestRateLimit_PassThroughWhenUnconfigured(t *testing.T) {
	tests := []struct {
		name string
		mw   gin.HandlerFunc
	}{
		{"nil client", RateLimit(nil, 5, time.Minute, KeyByIP())},
		{"zero max", RateLimit(newTestRedis(t), 0, time.Minute, KeyByIP())},
		{"zero window", RateLimit(newTestRedis(t), 5, 0, KeyByIP())},
		{"nil key func", RateLimit(newTestRedis(t), 5, time.Minute, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(tt.mw)
			r.GET("/limited", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

			for i := 0; i < 10; i++ {
				assert.Equal(t, http.StatusOK, hit(r, http.MethodGet).Code)
			}
		})
	}
}

func TestRateLimit_FailOpenOnRedisOutage(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{
		Addr:        mr.Addr(),
		DialTimeout: 50 * time.Millisecond,
		ReadTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	r := newLimitedRouter(rdb, 1, time.Minute, KeyByIP())

	require.Equal(t, http.StatusOK, hit(r, http.MethodGet).Code)

	// redis goes away mid-flight; requests keep flowing instead of 429/500
	mr.Close()
	for i := 0; i < 3; i++ {
		w := hit(r, http.MethodGet)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestKeyFuncs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		c.Request.RemoteAddr = "10.1.2.3:4567"
		return c
	}

	c := newCtx()
	assert.Equal(t, "rl:ip:10.1.2.3", KeyByIP()(c))

	// real_ip set by the RealIP middleware wins over the socket address
	c = newCtx()
	c.Set("real_ip", "203.0.113.9")
	assert.Equal(t, "rl:ip:203.0.113.9", KeyByIP()(c))

	c = newCtx()
	assert.Equal(t, "rl:path:/api/auth/login:ip:10.1.2.3", KeyByIPAndPath()(c))
}
