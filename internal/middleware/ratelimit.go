package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/cafe-directory/internal/httperr"
)

type RateLimitConfig struct {
	Capacity int
	Window   time.Duration
	Prefix   string
}

// fixed window: INCR the bucket and arm its expiry on first hit
var rateLimitScript = redis.NewScript(`
	local current = redis.call('INCR', KEYS[1])
	if current == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	return { current, redis.call('PTTL', KEYS[1]) }
`)

// RateLimit limits requests per client ip and route. A nil client or a
// redis failure lets the request through.
func RateLimit(rdb *redis.Client, cfg RateLimitConfig, log *zap.Logger) gin.HandlerFunc {
	if rdb == nil || cfg.Capacity <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "rl"
	}

	return func(c *gin.Context) {
		key := rateKey(cfg, c)

		vals, err := rateLimitScript.Run(
			c.Request.Context(),
			rdb,
			[]string{key},
			cfg.Window.Milliseconds(),
		).Int64Slice()
		if err != nil || len(vals) != 2 {
			log.Warn("rate limit check failed", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		count, ttlMs := vals[0], vals[1]
		remaining := int64(cfg.Capacity) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(cfg.Capacity) {
			secs := (ttlMs + 999) / 1000
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.FormatInt(secs, 10))
			httperr.Abort(c, http.StatusTooManyRequests, httperr.TitleRateLimited, "Rate limit exceeded, try again later.")
			return
		}

		c.Next()
	}
}

func rateKey(cfg RateLimitConfig, c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	return strings.Join([]string{cfg.Prefix, "ip", ip, "route", c.Request.Method + " " + route}, ":")
}
