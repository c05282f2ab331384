package cache

import (
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

// key names definition
// key names in lua script should follow these formats
const (
	UserBookingKey        = "user:%d:booking"         // cached booking view of a user, '%d' is user id
	UserBookingVersionKey = "user:%d:booking:version" // bumped on every committed booking write of a user
	UserRateWindowKey     = "user:%d:rate:%s"         // write counter of a user in the current window, '%s' is the scope
)

func MakeUserBookingKey(userID uint) string {
	return fmt.Sprintf(UserBookingKey, userID)
}

func MakeUserBookingVersionKey(userID uint) string {
	return fmt.Sprintf(UserBookingVersionKey, userID)
}

func MakeUserRateWindowKey(userID uint, scope string) string {
	return fmt.Sprintf(UserRateWindowKey, userID, scope)
}

// errors
var (
	ErrCacheMiss   = errors.New("cache miss")
	ErrRateLimited = errors.New("rate limit exceeded")
)

// lua scripts
var setBookingViewIfVersionScript = redis.NewScript(`
	-- KEYS[1] = user:{user_id}:booking
	-- KEYS[2] = user:{user_id}:booking:version

	-- ARGV[1] = version read before loading the view
	-- ARGV[2] = view json
	-- ARGV[3] = ttl in milliseconds

	local current = redis.call("GET", KEYS[2])
	if current == false then
		current = "0"
	end

	if current ~= ARGV[1] then
		return 0  -- a write happened since the view was loaded
	end

	if tonumber(ARGV[3]) > 0 then
		redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
	else
		redis.call("SET", KEYS[1], ARGV[2])
	end

	return 1
`)

var invalidateBookingViewScript = redis.NewScript(`
	-- KEYS[1] = user:{user_id}:booking
	-- KEYS[2] = user:{user_id}:booking:version

	local version = redis.call("INCR", KEYS[2])
	redis.call("DEL", KEYS[1])

	return version
`)

var fixedWindowScript = redis.NewScript(`
	-- KEYS[1] = user:{user_id}:rate:{scope}

	-- ARGV[1] = limit
	-- ARGV[2] = window in milliseconds

	local count = redis.call("INCR", KEYS[1])
	if count == 1 then
		redis.call("PEXPIRE", KEYS[1], ARGV[2])
	end

	if count > tonumber(ARGV[1]) then
		return -1  -- over the limit
	end

	return tonumber(ARGV[1]) - count
`)
