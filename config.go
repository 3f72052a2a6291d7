package partialpass

import (
	"errors"
	"time"

	"github.com/partialpass/partialpass/pattern"
)

// Config defines a public type used by partialpass APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Generator GeneratorConfig
	Password  PasswordConfig
	Challenge ChallengeConfig
	Store     StoreConfig
	Audit     AuditConfig
	Metrics   MetricsConfig
}

/*
====================================
GENERATOR CONFIG
====================================
*/

// DropRate defines a public type used by partialpass APIs.
//
// DropRate instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type DropRate int

const (
	// DropGentle is an exported constant or variable used by the partial-password engine.
	DropGentle DropRate = 1
	// DropModerate is an exported constant or variable used by the partial-password engine.
	DropModerate DropRate = 10
	// DropSteep is an exported constant or variable used by the partial-password engine.
	DropSteep DropRate = 25
	// DropAggressive is an exported constant or variable used by the partial-password engine.
	DropAggressive DropRate = 50
)

// GeneratorConfig defines a public type used by partialpass APIs.
//
// GeneratorConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type GeneratorConfig struct {
	BitsRange         int
	CharactersMin     int
	CharactersMax     int
	PasswordsMin      int
	PasswordsMax      int
	DropRate          DropRate
	Encoding          string // "utf8" (default) or "bytes"
	MaxPatternRetries int    // 0 = default (32)
}

/*
====================================
PASSWORD CONFIG
====================================
*/

// PasswordConfig defines a public type used by partialpass APIs.
//
// PasswordConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type PasswordConfig struct {
	Memory            uint32 // in KB
	Time              uint32
	Parallelism       uint8
	SaltLength        uint32
	KeyLength         uint32
	MaxPlaintextBytes int
}

/*
====================================
CHALLENGE CONFIG
====================================
*/

// ChallengeConfig defines a public type used by partialpass APIs.
//
// ChallengeConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ChallengeConfig struct {
	Enabled       bool
	TTL           time.Duration
	SigningMethod string // "hs256" (default) or "ed25519"
	PrivateKey    []byte
	PublicKey     []byte
	Issuer        string
	Leeway        time.Duration
}

// StoreConfig defines a public type used by partialpass APIs.
//
// StoreConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StoreConfig struct {
	RedisPrefix string
}

// AuditConfig defines a public type used by partialpass APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by partialpass APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig describes the defaultconfig operation and its observable behavior.
//
// DefaultConfig may return an error when input validation, dependency calls, or security checks fail.
// DefaultConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Generator: GeneratorConfig{
			BitsRange:         16,
			CharactersMin:     3,
			CharactersMax:     5,
			PasswordsMin:      5,
			PasswordsMax:      10,
			DropRate:          DropModerate,
			Encoding:          pattern.EncodingUTF8,
			MaxPatternRetries: 0,
		},
		Password: PasswordConfig{
			Memory:      65536,
			Time:        3,
			Parallelism: 2,
			SaltLength:  16,
			KeyLength:   32,
		},
		Challenge: ChallengeConfig{
			Enabled:       false,
			TTL:           2 * time.Minute,
			SigningMethod: "hs256",
		},
		Store: StoreConfig{
			RedisPrefix: "pph",
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Challenge.PrivateKey = cloneBytes(cfg.Challenge.PrivateKey)
	out.Challenge.PublicKey = cloneBytes(cfg.Challenge.PublicKey)
	return out
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// Generator
	if c.Generator.BitsRange < 1 {
		return errors.New("Generator BitsRange must be >= 1")
	}
	if c.Generator.BitsRange > pattern.MaxBits {
		return errors.New("Generator BitsRange must be <= 64 (pattern codec width)")
	}
	if c.Generator.CharactersMin < 1 {
		return errors.New("Generator CharactersMin must be >= 1")
	}
	if c.Generator.CharactersMax < c.Generator.CharactersMin {
		return errors.New("Generator CharactersMax must be >= CharactersMin")
	}
	if c.Generator.CharactersMin > c.Generator.BitsRange {
		return errors.New("Generator CharactersMin must be <= BitsRange")
	}
	if c.Generator.CharactersMax > c.Generator.BitsRange {
		return errors.New("Generator CharactersMax must be <= BitsRange")
	}
	if c.Generator.PasswordsMin < 1 {
		return errors.New("Generator PasswordsMin must be >= 1")
	}
	if c.Generator.PasswordsMax < c.Generator.PasswordsMin {
		return errors.New("Generator PasswordsMax must be >= PasswordsMin")
	}
	switch c.Generator.DropRate {
	case DropGentle, DropModerate, DropSteep, DropAggressive:
		// valid
	default:
		return errors.New("Generator DropRate must be 1, 10, 25, or 50")
	}
	switch c.Generator.Encoding {
	case pattern.EncodingUTF8, pattern.EncodingBytes:
		// valid
	default:
		return errors.New("Generator Encoding must be 'utf8' or 'bytes'")
	}
	if c.Generator.MaxPatternRetries < 0 {
		return errors.New("Generator MaxPatternRetries must be >= 0")
	}

	// Password
	if c.Password.Memory < 8*1024 {
		return errors.New("Password Memory must be >= 8192 KB")
	}
	if c.Password.Time < 1 {
		return errors.New("Password Time must be >= 1")
	}
	if c.Password.Parallelism < 1 {
		return errors.New("Password Parallelism must be >= 1")
	}
	if c.Password.SaltLength < 16 {
		return errors.New("Password SaltLength must be >= 16")
	}
	if c.Password.KeyLength < 16 {
		return errors.New("Password KeyLength must be >= 16")
	}
	if c.Password.MaxPlaintextBytes < 0 {
		return errors.New("Password MaxPlaintextBytes must be >= 0")
	}

	// Challenge
	if c.Challenge.Enabled {
		if c.Challenge.TTL <= 0 {
			return errors.New("Challenge TTL must be > 0")
		}
		if c.Challenge.Leeway < 0 {
			return errors.New("Challenge Leeway must be >= 0")
		}
		switch c.Challenge.SigningMethod {
		case "hs256":
			if len(c.Challenge.PrivateKey) == 0 {
				return errors.New("hs256 requires PrivateKey")
			}
		case "ed25519":
			if len(c.Challenge.PrivateKey) == 0 {
				return errors.New("ed25519 requires PrivateKey")
			}
			if len(c.Challenge.PublicKey) == 0 {
				return errors.New("ed25519 requires PublicKey")
			}
		default:
			return errors.New("unsupported Challenge signing method")
		}
	}

	// Audit
	if c.Audit.Enabled {
		if c.Audit.BufferSize <= 0 {
			return errors.New("Audit BufferSize must be > 0 when audit is enabled")
		}
	}

	return nil
}
