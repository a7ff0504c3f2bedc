package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/rabitt1ove/freedays"
)

type Config struct {
	Country  string          `mapstructure:"country"`
	Year     int             `mapstructure:"year"`
	Weekend  []string        `mapstructure:"weekend"`
	Holidays []CountryConfig `mapstructure:"holidays"`
	Logging  LoggingConfig   `mapstructure:"logging"`
}

// CountryConfig overrides the built-in table. A list is used rather than a
// map because viper lower-cases map keys and country codes are case-sensitive.
type CountryConfig struct {
	Country string   `mapstructure:"country"`
	Dates   []string `mapstructure:"dates"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("country", "Mar")
	v.SetDefault("year", 0)
	v.SetDefault("weekend", []string{freedays.DefaultWeekendDay1, freedays.DefaultWeekendDay2})
	v.SetDefault("logging.level", "info")

	// Environment variable support
	v.SetEnvPrefix("FREEDAYS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Load config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("freedays")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// An explicit path must exist; the search paths are optional.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Country == "" {
		return fmt.Errorf("country is required (set FREEDAYS_COUNTRY env var)")
	}
	if c.Year < 0 {
		return fmt.Errorf("year must be >= 0 (0 means current year)")
	}
	if len(c.Weekend) != 2 {
		return fmt.Errorf("weekend must name exactly 2 days, got %d", len(c.Weekend))
	}
	if _, err := c.Table(); err != nil {
		return err
	}
	return nil
}

// Table returns the holiday table the configuration selects: the built-in
// table, or the configured overrides when any are present.
func (c *Config) Table() (freedays.HolidayTable, error) {
	if len(c.Holidays) == 0 {
		return freedays.DefaultTable, nil
	}
	rows := make([]freedays.CountryHolidays, len(c.Holidays))
	for i, h := range c.Holidays {
		rows[i] = freedays.CountryHolidays{Country: h.Country, Dates: h.Dates}
	}
	t, err := freedays.NewTable(rows...)
	if err != nil {
		return nil, fmt.Errorf("holidays: %w", err)
	}
	return t, nil
}
