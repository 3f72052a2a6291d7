package partialpass

import (
	"context"
	"time"
)

const (
	auditEventEnroll    = "enroll"
	auditEventChallenge = "challenge"
	auditEventVerify    = "verify"
	auditEventRevoke    = "revoke"
)

func (e *Engine) emitAudit(ctx context.Context, eventType, userID string, pat uint64, challengeID string, success bool, opErr error) {
	if e == nil || e.audit == nil {
		return
	}

	event := AuditEvent{
		Timestamp:   time.Now(),
		EventType:   eventType,
		UserID:      userID,
		Pattern:     pat,
		ChallengeID: challengeID,
		Success:     success,
	}
	if opErr != nil {
		event.Error = opErr.Error()
	}

	e.audit.Emit(ctx, event)
}
