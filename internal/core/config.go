package core

import (
	"time"

	"github.com/spf13/viper"
)

// Config carries the runtime knobs. Everything binds to PROMPTPARTY_*
// environment variables; a .env file is loaded by main before this runs.
type Config struct {
	Addr         string
	DBPath       string
	JWTSecret    string
	ActiveWindow time.Duration

	// Poll intervals handed to clients via the config endpoint. The
	// coordinator itself never sleeps; pacing is the poller's job.
	PollForeground time.Duration
	PollBackground time.Duration
}

var Cfg Config

func InitConfig() error {
	v := viper.New()
	v.SetEnvPrefix("promptparty")
	v.AutomaticEnv()

	v.SetDefault("addr", "0.0.0.0:8080")
	v.SetDefault("db_path", "prompt-party-server.db")
	v.SetDefault("jwt_secret", "secret-key")
	v.SetDefault("active_window", "2h")
	v.SetDefault("poll_foreground", "2s")
	v.SetDefault("poll_background", "15s")

	Cfg = Config{
		Addr:           v.GetString("addr"),
		DBPath:         v.GetString("db_path"),
		JWTSecret:      v.GetString("jwt_secret"),
		ActiveWindow:   v.GetDuration("active_window"),
		PollForeground: v.GetDuration("poll_foreground"),
		PollBackground: v.GetDuration("poll_background"),
	}
	return nil
}
