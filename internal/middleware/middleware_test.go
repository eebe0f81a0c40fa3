package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(r http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, RequestIDFromContext(c))
	})

	w := do(r, http.MethodGet, "/x", nil)
	rid := w.Header().Get(RequestIDHeader)
	assert.Len(t, rid, 36)
	assert.Equal(t, rid, w.Body.String())

	w = do(r, http.MethodGet, "/x", http.Header{RequestIDHeader: {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRecoveryWritesJSON(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := gin.New()
	r.Use(RequestIDMiddleware(), Recovery(zap.New(core)))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := do(r, http.MethodGet, "/boom", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"Internal Server Error":"Something went wrong."}}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestRequestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestIDMiddleware(), RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	do(r, http.MethodGet, "/ok", nil)
	do(r, http.MethodGet, "/missing", nil)
	do(r, http.MethodGet, "/fail", nil)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, zap.ErrorLevel, entries[2].Level)
	assert.Equal(t, "/missing", entries[1].ContextMap()["path"])
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
}

func newLimitedRouter(t *testing.T, capacity int) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.POST("/add", RateLimit(rdb, RateLimitConfig{Capacity: capacity, Window: time.Minute}, zap.NewNop()),
		func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r, mr
}

func TestRateLimitBlocksAfterCapacity(t *testing.T) {
	r, mr := newLimitedRouter(t, 2)

	assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/add", nil).Code)
	w := do(r, http.MethodPost, "/add", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = do(r, http.MethodPost, "/add", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "Too Many Requests")

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/add", nil).Code)
}

func TestRateLimitFailsOpen(t *testing.T) {
	r, mr := newLimitedRouter(t, 1)
	mr.Close()

	assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/add", nil).Code)
	assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/add", nil).Code)
}

func TestRateLimitDisabledWithoutClient(t *testing.T) {
	r := gin.New()
	r.POST("/add", RateLimit(nil, RateLimitConfig{Capacity: 1}, zap.NewNop()),
		func(c *gin.Context) { c.Status(http.StatusCreated) })

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/add", nil).Code)
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:3000"}))
	r.GET("/all", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, http.MethodGet, "/all", http.Header{"Origin": {"http://localhost:3000"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(r, http.MethodGet, "/all", http.Header{"Origin": {"http://evil.example"}})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCORSWithoutOriginsAllowsAll(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(nil))
	r.GET("/all", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, http.MethodGet, "/all", http.Header{"Origin": {"http://anywhere.example"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
