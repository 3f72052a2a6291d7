package partialpass

import (
	"io"
	"time"

	internalaudit "github.com/partialpass/partialpass/internal/audit"
	"github.com/partialpass/partialpass/internal/sampling"
	"github.com/partialpass/partialpass/pattern"
)

// Pattern is the bitmask identifying which character positions of the
// enrolled password must be typed for one challenge. See [pattern.Pattern].
type Pattern = pattern.Pattern

// HashSet maps each generated pattern to the argon2id hash of the characters
// it selects. Produced by [Engine.Generate]; persisted by [Engine.Enroll].
type HashSet map[Pattern]string

// EnrollResult is returned by [Engine.Enroll]. Stored may be smaller than
// Requested when position eligibility ran out before the target count —
// an accepted outcome, not a failure.
type EnrollResult struct {
	UserID    string
	Requested int
	Stored    int
	Exhausted bool
}

// Challenge is returned by [Engine.Challenge]. Slots has one entry per
// character slot (length BitsRange); rendering collaborators draw an input
// box per true entry and a disabled placeholder per false entry, in ascending
// position order. Token is set only when challenge tokens are enabled.
type Challenge struct {
	UserID      string
	Pattern     Pattern
	Slots       []bool
	ChallengeID string
	Token       string
	ExpiresAt   time.Time
}

// RandSource is the injectable random source consumed by the generator.
// *math/rand/v2.Rand satisfies it, which keeps tests seedable.
type RandSource = sampling.Source

// SecurityReport is a read-only snapshot of the engine's generation and
// hashing posture, returned by [Engine.Report].
type SecurityReport struct {
	BitsRange              int
	CharactersMin          int
	CharactersMax          int
	PasswordsMin           int
	PasswordsMax           int
	DropRate               DropRate
	Encoding               string
	MaxPatternRetries      int
	Argon2                 PasswordConfigReport
	ChallengeTokensEnabled bool
	ChallengeTTL           time.Duration
	SigningAlgorithm       string
	AuditEnabled           bool
	MetricsEnabled         bool
}

// PasswordConfigReport contains the argon2id parameters active in the engine.
type PasswordConfigReport struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// AuditEvent is a structured audit record emitted by the engine.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the engine's audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
