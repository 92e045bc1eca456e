package cli

import (
	"fmt"

	"github.com/spf13/viper"
)

// config holds the settings read from config.yaml.
type config struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
	Verbose bool   `mapstructure:"verbose"`
}

// loadConfig reads config.yaml from dir. A missing file is not an
// error; the zero config applies.
func loadConfig(dir string) (config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return config{}, nil
		}
		return config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
