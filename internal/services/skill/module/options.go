package module

import "almanacco/internal/platform/config"

// Options holds configuration settings for the skill module
type Options struct {
	Prefix string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	sf := cfg.Prefix("SKILL_")
	return Options{
		Prefix: sf.MayString("HTTP_PREFIX", "/alexa"),
	}
}
