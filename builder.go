package partialpass

import (
	"errors"

	"github.com/partialpass/partialpass/challenge"
	"github.com/partialpass/partialpass/internal/sampling"
	"github.com/partialpass/partialpass/internal/stores"
	"github.com/partialpass/partialpass/password"
	"github.com/redis/go-redis/v9"
)

// Builder defines a public type used by partialpass APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	redis  *redis.Client

	auditSink  AuditSink
	randSource RandSource

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig may return an error when input validation, dependency calls, or security checks fail.
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis describes the withredis operation and its observable behavior.
//
// WithRedis may return an error when input validation, dependency calls, or security checks fail.
// WithRedis does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink may return an error when input validation, dependency calls, or security checks fail.
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithRandSource describes the withrandsource operation and its observable behavior.
//
// WithRandSource may return an error when input validation, dependency calls, or security checks fail.
// WithRandSource does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRandSource(src RandSource) *Builder {
	b.randSource = src
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms may return an error when input validation, dependency calls, or security checks fail.
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if b.redis == nil {
		return nil, errors.New("redis client required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	engine := &Engine{
		config: cloneConfig(cfg),
		store:  stores.NewPartialHashStore(b.redis, cfg.Store.RedisPrefix),
	}

	hasher, err := password.NewArgon2(password.Config{
		Memory:            cfg.Password.Memory,
		Time:              cfg.Password.Time,
		Parallelism:       cfg.Password.Parallelism,
		SaltLength:        cfg.Password.SaltLength,
		KeyLength:         cfg.Password.KeyLength,
		MaxPlaintextBytes: cfg.Password.MaxPlaintextBytes,
	})
	if err != nil {
		return nil, err
	}
	engine.hasher = hasher

	if cfg.Challenge.Enabled {
		cm, err := challenge.NewManager(challenge.Config{
			TTL:           cfg.Challenge.TTL,
			SigningMethod: challenge.SigningMethod(cfg.Challenge.SigningMethod),
			PrivateKey:    cloneBytes(cfg.Challenge.PrivateKey),
			PublicKey:     cloneBytes(cfg.Challenge.PublicKey),
			Issuer:        cfg.Challenge.Issuer,
			Leeway:        cfg.Challenge.Leeway,
		})
		if err != nil {
			return nil, err
		}
		engine.challenges = cm
	}

	engine.audit = newAuditDispatcher(cfg.Audit, b.auditSink)
	engine.metrics = NewMetrics(cfg.Metrics)

	engine.rand = b.randSource
	if engine.rand == nil {
		engine.rand = sampling.DefaultSource()
	}

	b.built = true

	return engine, nil
}
