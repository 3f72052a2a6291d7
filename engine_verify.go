package partialpass

import (
	"context"
	"errors"
	"fmt"

	"github.com/partialpass/partialpass/internal/stores"
)

// Verify describes the verify operation and its observable behavior.
//
// Verify checks the user's typed characters against the stored hash for the
// given pattern. An unknown pattern is reported as a plain mismatch (false,
// nil) so callers cannot distinguish it from a wrong answer.
//
// Verify may return an error when input validation, dependency calls, or security checks fail.
// Verify does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Verify(ctx context.Context, userID string, p Pattern, input string) (bool, error) {
	if e == nil {
		return false, ErrEngineNotReady
	}
	if userID == "" {
		return false, ErrNoUserID
	}

	stored, err := e.store.Lookup(ctx, userID, p.Raw())
	if err != nil {
		if errors.Is(err, stores.ErrHashNotFound) {
			e.metricInc(MetricVerifyUnknownPattern)
			e.metricInc(MetricVerifyFailure)
			e.emitAudit(ctx, auditEventVerify, userID, p.Raw(), "", false, nil)
			return false, nil
		}
		e.metricInc(MetricStoreError)
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	ok, err := e.hasher.Verify(input, stored)
	if err != nil {
		e.metricInc(MetricVerifyFailure)
		e.emitAudit(ctx, auditEventVerify, userID, p.Raw(), "", false, err)
		return false, err
	}

	if ok {
		e.metricInc(MetricVerifySuccess)
	} else {
		e.metricInc(MetricVerifyFailure)
	}
	e.emitAudit(ctx, auditEventVerify, userID, p.Raw(), "", ok, nil)

	return ok, nil
}

// VerifyToken describes the verifytoken operation and its observable behavior.
//
// VerifyToken resolves the user and pattern from a previously issued challenge
// token, then verifies the typed characters the same way Verify does.
//
// VerifyToken may return an error when input validation, dependency calls, or security checks fail.
// VerifyToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) VerifyToken(ctx context.Context, token, input string) (bool, error) {
	if e == nil {
		return false, ErrEngineNotReady
	}
	if e.challenges == nil {
		return false, ErrChallengeDisabled
	}

	claims, err := e.challenges.Parse(token)
	if err != nil {
		e.metricInc(MetricTokenRejected)
		e.emitAudit(ctx, auditEventVerify, "", 0, "", false, err)
		return false, fmt.Errorf("%w: %v", ErrChallengeTokenInvalid, err)
	}

	return e.Verify(ctx, claims.UID, Pattern(claims.Pattern), input)
}

// DeleteEnrollment describes the deleteenrollment operation and its observable behavior.
//
// DeleteEnrollment may return an error when input validation, dependency calls, or security checks fail.
// DeleteEnrollment does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) DeleteEnrollment(ctx context.Context, userID string) error {
	if e == nil {
		return ErrEngineNotReady
	}
	if userID == "" {
		return ErrNoUserID
	}

	if err := e.store.Delete(ctx, userID); err != nil {
		e.metricInc(MetricStoreError)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	e.metricInc(MetricEnrollmentRevoked)
	e.emitAudit(ctx, auditEventRevoke, userID, 0, "", true, nil)

	return nil
}

// PatternCount describes the patterncount operation and its observable behavior.
//
// PatternCount may return an error when input validation, dependency calls, or security checks fail.
// PatternCount does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) PatternCount(ctx context.Context, userID string) (int, error) {
	if e == nil {
		return 0, ErrEngineNotReady
	}
	if userID == "" {
		return 0, ErrNoUserID
	}

	n, err := e.store.Count(ctx, userID)
	if err != nil {
		e.metricInc(MetricStoreError)
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return n, nil
}
