package utils

import "errors"

// Selection preconditions and AI-output validation.
var (
	ErrEmptyCandidateSet     = errors.New("candidate set is empty")
	ErrMissingTimeWindow     = errors.New("time window not specified")
	ErrMissingTravelPace     = errors.New("travel pace not specified")
	ErrWindowTooShort        = errors.New("time window too short for any poi")
	ErrUnparseableAIResponse = errors.New("ai response is not a parseable id array")
	ErrNoValidSelection      = errors.New("no returned id matches the candidate set")
	ErrAIUnavailable         = errors.New("ai completion service unavailable")
)

// Routing provider.
var (
	ErrRateLimitExceeded = errors.New("routing api rate limit exceeded; wait or upgrade the api key tier")
	ErrNoRouteFound      = errors.New("no route found between the given points")
)

// Service layer.
var (
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidInput       = errors.New("invalid input")
	ErrPOINotFound        = errors.New("poi not found")
	ErrProfileNotFound    = errors.New("traveler profile not found")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
