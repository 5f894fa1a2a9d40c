package config

// validate checks that the final merged [StructuredConfig] satisfies all
// service invariants before it is used at startup.
//
// A missing store configuration is deliberately NOT an error: the service
// starts without a gateway and the diagnostics endpoint reports the absence.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return ErrInvalidServerConfigs
	}

	return nil
}
