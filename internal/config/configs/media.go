package configs

// Media holds limits for creative uploads.
type Media struct {
	// MaxImageBytes is the largest accepted image upload.
	MaxImageBytes int `env:"MAX_IMAGE_BYTES" envDefault:"512000"`
}
