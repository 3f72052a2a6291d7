package partialpass

import "errors"

var (
	// ErrEngineNotReady is an exported constant or variable used by the partial-password engine.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrNoUserID is an exported constant or variable used by the partial-password engine.
	ErrNoUserID = errors.New("user id required")
	// ErrNoPasswordMaterial is an exported constant or variable used by the partial-password engine.
	ErrNoPasswordMaterial = errors.New("no password material provided")
	// ErrNoEnrollment is an exported constant or variable used by the partial-password engine.
	ErrNoEnrollment = errors.New("no enrollment for user")
	// ErrStoreUnavailable is an exported constant or variable used by the partial-password engine.
	ErrStoreUnavailable = errors.New("pattern store unavailable")
	// ErrChallengeDisabled is an exported constant or variable used by the partial-password engine.
	ErrChallengeDisabled = errors.New("challenge tokens disabled")
	// ErrChallengeTokenInvalid is an exported constant or variable used by the partial-password engine.
	ErrChallengeTokenInvalid = errors.New("invalid challenge token")
)
