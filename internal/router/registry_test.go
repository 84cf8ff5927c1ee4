package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingModule struct {
	registered bool
}

func (m *pingModule) Register(rg *gin.RouterGroup) {
	m.registered = true
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
}

func TestRegistry_RegisterAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	reg := NewRegistry(engine)
	first := &pingModule{}
	second := &pingModule{}
	reg.Add(first)

	// routes are mounted on RegisterAll, not on Add
	assert.False(t, first.registered)
	reg.RegisterAll()
	assert.True(t, first.registered)
	assert.False(t, second.registered)

	// module routes land under the /api group
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"pong":true}`, w.Body.String())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
