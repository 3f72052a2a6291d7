package partialpass

import (
	"context"
	"fmt"
	"time"

	"github.com/partialpass/partialpass/internal/sampling"
	"github.com/partialpass/partialpass/pattern"
)

// Generate describes the generate operation and its observable behavior.
//
// Generate runs the full weighted-sampling pipeline in memory and returns the
// pattern-to-hash mapping without persisting anything. The raw password is
// never retained; only the argon2id hashes of the selected characters leave
// this function.
//
// Generate may return an error when input validation, dependency calls, or security checks fail.
// Generate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Generate(rawPassword string) (HashSet, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}

	hashes, _, err := e.generate(rawPassword)
	return hashes, err
}

// generate returns the hash set plus the target count the session aimed for,
// so Enroll can report partial outcomes.
func (e *Engine) generate(rawPassword string) (HashSet, int, error) {
	gen := e.config.Generator

	chars := pattern.SplitPassword(rawPassword, gen.BitsRange, gen.Encoding)

	target := gen.PasswordsMin
	if gen.PasswordsMax > gen.PasswordsMin {
		target += e.rand.IntN(gen.PasswordsMax - gen.PasswordsMin + 1)
	}

	hashes := make(HashSet, target)
	if len(chars) == 0 {
		return hashes, target, nil
	}

	session := sampling.NewSession(sampling.Config{
		BitsRange:     gen.BitsRange,
		Positions:     len(chars),
		CharactersMin: gen.CharactersMin,
		CharactersMax: gen.CharactersMax,
		DropRate:      int(gen.DropRate),
		MaxRetries:    gen.MaxPatternRetries,
	}, e.rand)

	for i := 0; i < target; i++ {
		p, positions, ok := session.NextPattern()
		if !ok {
			// eligible pool exhausted; fewer patterns is an accepted outcome
			break
		}

		selected := pattern.SelectCharacters(positions, chars)

		hash, err := e.hasher.Hash(selected)
		if err != nil {
			return nil, target, err
		}

		hashes[p] = hash
	}

	return hashes, target, nil
}

// Enroll describes the enroll operation and its observable behavior.
//
// Enroll generates a fresh pattern set for the user's password and replaces
// any previously stored set atomically. Re-enrolling is the supported path
// after a password change.
//
// Enroll may return an error when input validation, dependency calls, or security checks fail.
// Enroll does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Enroll(ctx context.Context, userID, rawPassword string) (*EnrollResult, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}
	if userID == "" {
		return nil, ErrNoUserID
	}
	if rawPassword == "" {
		e.metricInc(MetricEnrollFailure)
		e.emitAudit(ctx, auditEventEnroll, userID, 0, "", false, ErrNoPasswordMaterial)
		return nil, ErrNoPasswordMaterial
	}

	start := time.Now()

	hashes, target, err := e.generate(rawPassword)
	if err != nil {
		e.metricInc(MetricEnrollFailure)
		e.emitAudit(ctx, auditEventEnroll, userID, 0, "", false, err)
		return nil, err
	}

	raw := make(map[uint64]string, len(hashes))
	for p, h := range hashes {
		raw[p.Raw()] = h
	}

	if err := e.store.ReplaceAll(ctx, userID, raw); err != nil {
		e.metricInc(MetricStoreError)
		e.metricInc(MetricEnrollFailure)
		e.emitAudit(ctx, auditEventEnroll, userID, 0, "", false, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	e.metricObserve(MetricEnrollLatency, time.Since(start))

	result := &EnrollResult{
		UserID:    userID,
		Requested: target,
		Stored:    len(hashes),
		Exhausted: len(hashes) < target,
	}

	if result.Exhausted {
		e.metricInc(MetricEnrollPartial)
	} else {
		e.metricInc(MetricEnrollSuccess)
	}
	e.emitAudit(ctx, auditEventEnroll, userID, 0, "", true, nil)

	return result, nil
}
