package config

import (
	"log"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	HTTPAddr        string        `koanf:"http_addr"`
	DataDir         string        `koanf:"data_dir"`
	CORSAllowOrigin string        `koanf:"cors_allow_origin"`
	LogLevel        string        `koanf:"log_level"`
	LogFile         string        `koanf:"log_file"`
	Company         CompanyConfig `koanf:"company"`
}

// CompanyConfig seeds the session's company settings; everything can be
// changed later through the settings endpoints.
type CompanyConfig struct {
	Name       string `koanf:"name"`
	Address    string `koanf:"address"`
	Phone      string `koanf:"phone"`
	Email      string `koanf:"email"`
	FooterText string `koanf:"footer_text"`
	ThemeColor string `koanf:"theme_color"`
}

// MustLoad merges defaults with QUOTE_-prefixed environment variables;
// a double underscore separates nested keys (QUOTE_COMPANY__NAME).
func MustLoad() Config {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"http_addr":           ":8080",
		"data_dir":            ".",
		"cors_allow_origin":   "*",
		"log_level":           "info",
		"log_file":            "",
		"company.footer_text": "Thank you for your business!",
		"company.theme_color": "#4A90E2",
	}, "."), nil); err != nil {
		log.Fatalf("defaults: %v", err)
	}

	if err := k.Load(env.Provider("QUOTE_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "QUOTE_")), "__", ".")
	}), nil); err != nil {
		log.Fatalf("env: %v", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}
