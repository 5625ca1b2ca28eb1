package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Host string
	Port int
	URL  string
	Prod bool

	// CodespaceName is the cloud workspace identifier, if any.
	CodespaceName string
	APIOrigin     string
	FetchTimeout  time.Duration

	LogLevel  string
	SentryDSN string
}

func New() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 3000)
	v.SetDefault("host", "localhost")
	v.SetDefault("prod", false)
	v.SetDefault("fetch_timeout", time.Duration(0))
	v.SetDefault("log_level", "info")

	// the frontend build used the REACT_APP_ prefix
	_ = v.BindEnv("codespace_name", "CODESPACE_NAME", "REACT_APP_CODESPACE_NAME")

	return v
}

// Load reads the configuration, merging file if it is not empty.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "could not read config")
		}
	}

	cfg := Config{
		Host:          v.GetString("host"),
		Port:          v.GetInt("port"),
		Prod:          v.GetBool("prod"),
		CodespaceName: strings.TrimSpace(v.GetString("codespace_name")),
		APIOrigin:     strings.TrimSpace(v.GetString("api_origin")),
		FetchTimeout:  v.GetDuration("fetch_timeout"),
		LogLevel:      v.GetString("log_level"),
		SentryDSN:     v.GetString("sentry_dsn"),
	}

	cfg.URL = v.GetString("url")
	if cfg.URL == "" {
		cfg.URL = fmt.Sprintf("http://%s:%d", cfg.Host, cfg.Port)
	}

	if cfg.APIOrigin != "" && !govalidator.IsURL(cfg.APIOrigin) {
		return Config{}, errors.Errorf("api_origin %q is not a valid url", cfg.APIOrigin)
	}
	if cfg.FetchTimeout < 0 {
		return Config{}, errors.New("fetch_timeout must not be negative")
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
