package domain

import "errors"

var (
	// ErrProductNotFound is returned when no protein products match a search
	ErrProductNotFound = errors.New("no protein products found")

	// ErrIncompleteAnswers is returned when a required questionnaire answer is missing
	ErrIncompleteAnswers = errors.New("required questionnaire answers missing")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrRakutenAPIFailure is returned when a Rakuten Ichiba API request fails
	ErrRakutenAPIFailure = errors.New("rakuten ichiba API request failed")

	// ErrCacheUnavailable is returned when the cache backend cannot be reached
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
