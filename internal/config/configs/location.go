package configs

// Location is the market the service runs for. It replaces detecting the
// visitor's location at runtime.
type Location struct {
	Default string `env:"DEFAULT" envDefault:"Los Angeles, CA"`
}
