package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	SupabaseURL  string
	SupabaseKey  string
	AdminKey     string
	GeminiAPIKey string
	GeminiModel  string
	RelayURL     string
	CachePath    string
	TemplatesDir string
	Host         string
	Port         string
	CSRFSecret   string
	CookieDomain string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	c := &Config{
		SupabaseURL:  os.Getenv("SUPABASE_URL"),
		SupabaseKey:  os.Getenv("SUPABASE_ANON_KEY"),
		AdminKey:     os.Getenv("ADMIN_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		RelayURL:     os.Getenv("RELAY_URL"),
		CachePath:    os.Getenv("CACHE_PATH"),
		TemplatesDir: os.Getenv("TEMPLATES_DIR"),
		Host:         os.Getenv("HOST"),
		Port:         os.Getenv("PORT"),
		CSRFSecret:   os.Getenv("CSRF_SECRET"),
		CookieDomain: os.Getenv("COOKIE_DOMAIN"),
	}

	if c.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY is required")
	}
	if c.AdminKey == "" {
		return nil, fmt.Errorf("ADMIN_KEY is required")
	}
	if c.CSRFSecret == "" {
		return nil, fmt.Errorf("CSRF_SECRET is required")
	}
	if c.CachePath == "" {
		c.CachePath = "./lino.db"
	}
	if c.TemplatesDir == "" {
		c.TemplatesDir = "templates"
	}
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == "" {
		c.Port = "3000"
	}

	return c, nil
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}
