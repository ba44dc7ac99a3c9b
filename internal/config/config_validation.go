package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the application relies on at startup. Defaults cover most
// fields, so only a handful of conditions can still fail here.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
