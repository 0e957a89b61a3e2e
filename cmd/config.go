package cmd

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/inwestomat"
	"github.com/etnz/inwestomat/binance"
	"github.com/etnz/inwestomat/nbp"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the defaults of the command line flags.
type Config struct {
	// Currency is the default XTB account currency.
	Currency string `mapstructure:"currency"`
	// Verbose enables logs of HTTP requests and conversions.
	Verbose bool `mapstructure:"verbose"`

	Binance struct {
		URL string  `mapstructure:"url"`
		RPS float64 `mapstructure:"rps"` // RPS is the maximum number of requests per second.
	} `mapstructure:"binance"`

	NBP struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"nbp"`
}

// LoadConfig reads the configuration from the environment (INWESTOMAT_ prefix,
// with an optional .env file) and an optional inwestomat.yaml file in the
// working directory or in $HOME/.config/inwestomat.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("ignoring .env file: %v", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("inwestomat")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "inwestomat"))
	}

	v.SetEnvPrefix("INWESTOMAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("currency", string(inwestomat.PLN))
	v.SetDefault("verbose", false)
	v.SetDefault("binance.url", binance.DefaultURL)
	v.SetDefault("binance.rps", 10)
	v.SetDefault("nbp.url", nbp.DefaultURL)
}
