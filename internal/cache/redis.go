package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client

	bookingTTL time.Duration
}

func NewRedisCache(url string, bookingTTL time.Duration) (*RedisCache, error) {
	client := redis.NewClient(
		&redis.Options{
			Addr:     url,
			Password: "",
			DB:       0,
		},
	)
	redisCache := &RedisCache{Client: client, bookingTTL: bookingTTL}

	return redisCache, nil
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.Client.Close()
}

// Get decodes the JSON value stored under key into dest, returning ErrCacheMiss
// when the key does not exist.
func (r *RedisCache) Get(ctx context.Context, key string, dest any) error {
	data, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

/*
* booking view of a user
 */

func (r *RedisCache) GetBookingView(ctx context.Context, userID uint, dest any) error {
	return r.Get(ctx, MakeUserBookingKey(userID), dest)
}

// BookingVersion returns the write version of the user's booking, 0 before the
// first write. Read it before loading the view from the store.
func (r *RedisCache) BookingVersion(ctx context.Context, userID uint) (int64, error) {
	version, err := r.Client.Get(ctx, MakeUserBookingVersionKey(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return version, nil
}

// SetBookingViewIfVersion stores the view only while the booking version is
// still the one read before loading it. It reports whether the view was stored.
func (r *RedisCache) SetBookingViewIfVersion(ctx context.Context, userID uint, version int64, view any) (bool, error) {
	data, err := json.Marshal(view)
	if err != nil {
		return false, err
	}

	keys := []string{MakeUserBookingKey(userID), MakeUserBookingVersionKey(userID)}
	res, err := setBookingViewIfVersionScript.Run(ctx, r.Client, keys, version, data, r.bookingTTL.Milliseconds()).Int64()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// InvalidateBookingView bumps the booking version and drops the cached view,
// so fills that loaded the view before the write are rejected.
func (r *RedisCache) InvalidateBookingView(ctx context.Context, userID uint) error {
	keys := []string{MakeUserBookingKey(userID), MakeUserBookingVersionKey(userID)}
	return invalidateBookingViewScript.Run(ctx, r.Client, keys).Err()
}

/*
* write rate of a user
 */

// Allow counts one hit for the user in the current fixed window and returns
// ErrRateLimited once more than limit hits happened inside it.
func (r *RedisCache) Allow(ctx context.Context, userID uint, scope string, limit int, window time.Duration) (remaining int, err error) {
	key := MakeUserRateWindowKey(userID, scope)
	res, err := fixedWindowScript.Run(ctx, r.Client, []string{key}, limit, window.Milliseconds()).Int64()
	if err != nil {
		return 0, err
	}
	if res == -1 {
		return 0, ErrRateLimited
	}
	return int(res), nil
}
