package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// UploadDir is where uploaded images are written, keyed by their filename.
	UploadDir string `mapstructure:"upload_dir" validate:"required"`

	// MaxUploadBytes caps the size of a multipart upload request.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes" validate:"required,gt=0"`

	// MaxBodyBytes caps JSON and form request bodies.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" validate:"required,gt=0"`

	// KnownPersonIDs seeds the in-memory person registry.
	KnownPersonIDs []int `mapstructure:"known_person_ids" validate:"required,min=1,dive,gt=0"`
}

// AuthConfig contains the settings for login tokens.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// DatabaseConfig contains the optional database settings. When URL is empty
// known person IDs come from ServerConfig.KnownPersonIDs.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}
