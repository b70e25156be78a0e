package configs

import "time"

// Redis configures the community catalog cache. An empty Addr disables
// caching.
type Redis struct {
	Addr     string        `env:"ADDR"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"TTL" envDefault:"15m"`
}

// Enabled reports whether a Redis address is configured.
func (c Redis) Enabled() bool {
	return c.Addr != ""
}
