package partialpass

import (
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantValid bool
	}{
		{
			name:      "defaults valid",
			mutate:    func(c *Config) {},
			wantValid: true,
		},
		{
			name: "bits range zero",
			mutate: func(c *Config) {
				c.Generator.BitsRange = 0
			},
			wantValid: false,
		},
		{
			name: "bits range above codec width",
			mutate: func(c *Config) {
				c.Generator.BitsRange = 65
			},
			wantValid: false,
		},
		{
			name: "bits range at codec width",
			mutate: func(c *Config) {
				c.Generator.BitsRange = 64
			},
			wantValid: true,
		},
		{
			name: "characters min zero",
			mutate: func(c *Config) {
				c.Generator.CharactersMin = 0
			},
			wantValid: false,
		},
		{
			name: "characters max below min",
			mutate: func(c *Config) {
				c.Generator.CharactersMin = 5
				c.Generator.CharactersMax = 3
			},
			wantValid: false,
		},
		{
			name: "characters min above bits range",
			mutate: func(c *Config) {
				c.Generator.BitsRange = 4
				c.Generator.CharactersMin = 5
				c.Generator.CharactersMax = 5
			},
			wantValid: false,
		},
		{
			name: "passwords min zero",
			mutate: func(c *Config) {
				c.Generator.PasswordsMin = 0
			},
			wantValid: false,
		},
		{
			name: "passwords max below min",
			mutate: func(c *Config) {
				c.Generator.PasswordsMin = 10
				c.Generator.PasswordsMax = 5
			},
			wantValid: false,
		},
		{
			name: "drop rate valid steep",
			mutate: func(c *Config) {
				c.Generator.DropRate = DropSteep
			},
			wantValid: true,
		},
		{
			name: "drop rate invalid",
			mutate: func(c *Config) {
				c.Generator.DropRate = 13
			},
			wantValid: false,
		},
		{
			name: "encoding bytes valid",
			mutate: func(c *Config) {
				c.Generator.Encoding = "bytes"
			},
			wantValid: true,
		},
		{
			name: "encoding invalid",
			mutate: func(c *Config) {
				c.Generator.Encoding = "utf16"
			},
			wantValid: false,
		},
		{
			name: "negative pattern retries",
			mutate: func(c *Config) {
				c.Generator.MaxPatternRetries = -1
			},
			wantValid: false,
		},
		{
			name: "password memory too low",
			mutate: func(c *Config) {
				c.Password.Memory = 4096
			},
			wantValid: false,
		},
		{
			name: "password salt too short",
			mutate: func(c *Config) {
				c.Password.SaltLength = 8
			},
			wantValid: false,
		},
		{
			name: "challenge enabled without key",
			mutate: func(c *Config) {
				c.Challenge.Enabled = true
			},
			wantValid: false,
		},
		{
			name: "challenge enabled hs256 with key",
			mutate: func(c *Config) {
				c.Challenge.Enabled = true
				c.Challenge.PrivateKey = []byte("test-signing-key")
			},
			wantValid: true,
		},
		{
			name: "challenge enabled zero ttl",
			mutate: func(c *Config) {
				c.Challenge.Enabled = true
				c.Challenge.PrivateKey = []byte("test-signing-key")
				c.Challenge.TTL = 0
			},
			wantValid: false,
		},
		{
			name: "challenge unknown method",
			mutate: func(c *Config) {
				c.Challenge.Enabled = true
				c.Challenge.PrivateKey = []byte("test-signing-key")
				c.Challenge.SigningMethod = "rs256"
			},
			wantValid: false,
		},
		{
			name: "audit enabled zero buffer",
			mutate: func(c *Config) {
				c.Audit.Enabled = true
				c.Audit.BufferSize = 0
			},
			wantValid: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantValid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.wantValid && err == nil {
				t.Fatal("expected rejection")
			}
		})
	}
}

func TestCloneConfigIsolatesKeys(t *testing.T) {
	cfg := defaultConfig()
	cfg.Challenge.PrivateKey = []byte("secret")
	cfg.Challenge.TTL = time.Minute

	cloned := cloneConfig(cfg)
	cloned.Challenge.PrivateKey[0] = 'X'

	if cfg.Challenge.PrivateKey[0] != 's' {
		t.Fatal("clone shares key bytes with original")
	}
}
