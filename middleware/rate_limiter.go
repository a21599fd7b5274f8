package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var rdb *redis.Client

// RateLimitConfig defines the window rule applied to an endpoint.
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

// Rules keyed by METHOD + route pattern. Enrollment mutations are the
// contended writes, so they get the tightest budgets.
var rateLimitRules = map[string]RateLimitConfig{
	"POST /enrollments": {
		MaxRequests: 10,
		Window:      time.Minute,
	},
	"DELETE /enrollments/:id": {
		MaxRequests: 5,
		Window:      10 * time.Minute,
	},
	"PATCH /enrollments/:id/complete": {
		MaxRequests: 10,
		Window:      time.Minute,
	},
	"GET /enrollments": {
		MaxRequests: 60,
		Window:      time.Minute,
	},
}

var defaultRule = RateLimitConfig{
	MaxRequests: 60,
	Window:      time.Minute,
}

// InitRateLimiter wires the redis client; without it RateLimit is a
// pass-through.
func InitRateLimiter(redisClient *redis.Client) {
	rdb = redisClient
}

// Fixed window counter, atomic via Lua.
const fixedWindowScript = `
local key = KEYS[1]
local expiry = ARGV[1]
local limit = tonumber(ARGV[2])

local current = redis.call('GET', key)

if current == false then
	redis.call('SET', key, 1, 'EX', expiry)
	return {1, limit - 1}
end

local count = tonumber(current)
if count >= limit then
	return {count, 0}
end

local new_count = redis.call('INCR', key)
return {new_count, limit - new_count}
`

func fixedWindowRateLimit(c *gin.Context, key string, rule RateLimitConfig) (bool, error) {
	redisKey := fmt.Sprintf("rate:fw:%s", key)

	result, err := rdb.Eval(c.Request.Context(), fixedWindowScript, []string{redisKey},
		int(rule.Window.Seconds()), rule.MaxRequests).Result()
	if err != nil {
		return false, err
	}

	results := result.([]interface{})
	current := results[0].(int64)

	return current <= int64(rule.MaxRequests), nil
}

// RateLimit applies the per-route fixed window limit by client IP.
func RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ruleKey := c.Request.Method + " " + c.FullPath()
		rule, ok := rateLimitRules[ruleKey]
		if !ok {
			rule = defaultRule
		}

		key := fmt.Sprintf("%s:ip:%s", ruleKey, c.ClientIP())
		allowed, err := fixedWindowRateLimit(c, key, rule)
		if err != nil {
			// Redis being down should not take the API with it.
			log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "rate limit exceeded, try again later",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
