package app

import "time"

// Config holds application level settings.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"helo"`

	// RequireAuth puts user management and notification updates behind a
	// bearer token issued by POST /login.
	RequireAuth bool `env:"API_REQUIRE_AUTH" envDefault:"false"`

	// NotificationAllowHide accepts "mostrar": false on notification updates.
	NotificationAllowHide bool `env:"NOTIFICATION_ALLOW_HIDE" envDefault:"false"`

	// MaxBodySize caps JSON request bodies in bytes.
	MaxBodySize int64 `env:"MAX_BODY_SIZE" envDefault:"1048576"`

	// Login attempts allowed per client IP within LoginRateWindow.
	LoginRateLimit  int           `env:"LOGIN_RATE_LIMIT" envDefault:"10"`
	LoginRateWindow time.Duration `env:"LOGIN_RATE_WINDOW" envDefault:"1m"`
}
