package partialpass

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/partialpass/partialpass/internal/stores"
)

// Challenge describes the challenge operation and its observable behavior.
//
// Challenge picks one of the user's stored patterns uniformly at random and
// returns it with the slot layout a UI needs to render the prompt. When
// challenge tokens are enabled, the returned Challenge also carries a signed
// token binding the pattern to the user for the configured TTL.
//
// Challenge may return an error when input validation, dependency calls, or security checks fail.
// Challenge does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Challenge(ctx context.Context, userID string) (*Challenge, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}
	if userID == "" {
		return nil, ErrNoUserID
	}

	raw, err := e.store.RandomPattern(ctx, userID)
	if err != nil {
		if errors.Is(err, stores.ErrHashNotFound) {
			e.metricInc(MetricChallengeFailure)
			e.emitAudit(ctx, auditEventChallenge, userID, 0, "", false, ErrNoEnrollment)
			return nil, ErrNoEnrollment
		}
		e.metricInc(MetricStoreError)
		e.metricInc(MetricChallengeFailure)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	p := Pattern(raw)

	ch := &Challenge{
		UserID:  userID,
		Pattern: p,
		Slots:   p.Slots(e.config.Generator.BitsRange),
	}

	if e.challenges != nil {
		token, challengeID, err := e.challenges.Issue(userID, raw)
		if err != nil {
			e.metricInc(MetricChallengeFailure)
			e.emitAudit(ctx, auditEventChallenge, userID, raw, "", false, err)
			return nil, err
		}
		ch.Token = token
		ch.ChallengeID = challengeID
		ch.ExpiresAt = time.Now().Add(e.config.Challenge.TTL)
	} else {
		ch.ChallengeID = uuid.NewString()
	}

	e.metricInc(MetricChallengeIssued)
	e.emitAudit(ctx, auditEventChallenge, userID, raw, ch.ChallengeID, true, nil)

	return ch, nil
}
