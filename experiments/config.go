package experiments

import (
	"fmt"

	"github.com/R3Kr/seven-wonders/meta"

	"github.com/spf13/viper"
)

type Config struct {
	Games           int      `mapstructure:"games"`
	Workers         int      `mapstructure:"workers"`
	PlayoutBand     int      `mapstructure:"playout_band"`
	Playouts        []int    `mapstructure:"playouts"`
	ExcludedWonders []string `mapstructure:"excluded_wonders"`
	OutputDir       string   `mapstructure:"output_dir"`
}

// LoadConfig reads path when it is set. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("games", meta.GAMES)
	v.SetDefault("workers", meta.WORKERS)
	v.SetDefault("playout_band", meta.PLAYOUT_BAND)
	v.SetDefault("playouts", meta.PLAYOUTS)
	v.SetDefault("excluded_wonders", meta.EXCLUDED_WONDERS)
	v.SetDefault("output_dir", meta.OUTPUT_DIR)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Games <= 0:
		return fmt.Errorf("games must be positive, got %d", c.Games)
	case c.Workers <= 0:
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	case c.PlayoutBand <= 0:
		return fmt.Errorf("playout_band must be positive, got %d", c.PlayoutBand)
	case len(c.Playouts) == 0:
		return fmt.Errorf("playouts must not be empty")
	}
	return nil
}

// PlayoutsFor returns the playouts of the band game id falls in. The last band has no upper bound.
func (c Config) PlayoutsFor(id int) int {
	return c.Playouts[min(id/c.PlayoutBand, len(c.Playouts)-1)]
}
