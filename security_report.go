package partialpass

// Report describes the report operation and its observable behavior.
//
// Report returns the engine's effective generation and hashing parameters.
// It exposes configuration only, never per-user state.
//
// Report may return an error when input validation, dependency calls, or security checks fail.
// Report does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Report() SecurityReport {
	if e == nil {
		return SecurityReport{}
	}

	report := SecurityReport{
		BitsRange:         e.config.Generator.BitsRange,
		CharactersMin:     e.config.Generator.CharactersMin,
		CharactersMax:     e.config.Generator.CharactersMax,
		PasswordsMin:      e.config.Generator.PasswordsMin,
		PasswordsMax:      e.config.Generator.PasswordsMax,
		DropRate:          e.config.Generator.DropRate,
		Encoding:          e.config.Generator.Encoding,
		MaxPatternRetries: e.config.Generator.MaxPatternRetries,
		Argon2: PasswordConfigReport{
			Memory:      e.config.Password.Memory,
			Time:        e.config.Password.Time,
			Parallelism: e.config.Password.Parallelism,
			SaltLength:  e.config.Password.SaltLength,
			KeyLength:   e.config.Password.KeyLength,
		},
		ChallengeTokensEnabled: e.config.Challenge.Enabled,
		AuditEnabled:           e.audit != nil,
		MetricsEnabled:         e.metrics.Enabled(),
	}

	if e.config.Challenge.Enabled {
		report.ChallengeTTL = e.config.Challenge.TTL
		report.SigningAlgorithm = e.config.Challenge.SigningMethod
	}

	return report
}
