// file: internal/config/config.go
// version: 2.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config holds application configuration
type Config struct {
	MaxYear     int    // latest accepted publication year; 0 means the current year
	SeedFile    string // optional YAML file loaded into the catalog at startup
	Language    string // BCP 47 tag used to format numbers
	LogFile     string
	MetricsAddr string // empty disables the /metrics listener
}

var AppConfig Config

// InitConfig initializes the application configuration
func InitConfig() {
	// Set defaults
	viper.SetDefault("max_year", 0)
	viper.SetDefault("language", "en")
	viper.SetDefault("log_file", "library-catalog.log")

	AppConfig = Config{
		MaxYear:     viper.GetInt("max_year"),
		SeedFile:    viper.GetString("seed_file"),
		Language:    viper.GetString("language"),
		LogFile:     viper.GetString("log_file"),
		MetricsAddr: viper.GetString("metrics_addr"),
	}

	if AppConfig.MaxYear <= 0 {
		AppConfig.MaxYear = time.Now().Year()
	}
	if AppConfig.Language == "" {
		AppConfig.Language = "en"
	}
}

// LanguageTag parses the configured language, falling back to English
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		log.Printf("[WARN] Invalid language %q, using English: %v", c.Language, err)
		return language.English
	}
	return tag
}
