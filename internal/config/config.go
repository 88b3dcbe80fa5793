package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Store struct {
		// Driver selects the storage backend: json (flat files, the
		// default), sqlite3, mysql, or postgres.
		Driver  string
		DataDir string
		DSN     string
	}
	JWT struct {
		Secret string
		TTL    time.Duration
	}
	News struct {
		Feeds    []string
		Schedule string
	}
	AdminEmail string
}

// Load reads config from environment (AIHUB_ prefix) and optional
// aitoolhub.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AIHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("aitoolhub")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("store.driver", "json")
	v.SetDefault("store.data_dir", "./data")
	v.SetDefault("jwt.ttl", "24h")
	v.SetDefault("news.schedule", "0 * * * *")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.Store.Driver = v.GetString("store.driver")
	cfg.Store.DataDir = v.GetString("store.data_dir")
	cfg.Store.DSN = v.GetString("store.dsn")
	cfg.JWT.Secret = v.GetString("jwt.secret")
	cfg.News.Feeds = splitFeeds(v.GetStringSlice("news.feeds"))
	cfg.News.Schedule = v.GetString("news.schedule")
	cfg.AdminEmail = v.GetString("admin_email")

	ttl, err := time.ParseDuration(v.GetString("jwt.ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid AIHUB_JWT_TTL: %w", err)
	}
	cfg.JWT.TTL = ttl

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("AIHUB_JWT_SECRET is required")
	}
	switch cfg.Store.Driver {
	case "json":
		if cfg.Store.DataDir == "" {
			return nil, fmt.Errorf("AIHUB_STORE_DATA_DIR is required for the json driver")
		}
	case "sqlite3", "mysql", "postgres":
		if cfg.Store.DSN == "" {
			return nil, fmt.Errorf("AIHUB_STORE_DSN is required for driver %q", cfg.Store.Driver)
		}
	default:
		return nil, fmt.Errorf("AIHUB_STORE_DRIVER must be json, sqlite3, mysql, or postgres")
	}

	return cfg, nil
}

// splitFeeds normalizes the feeds value. A yaml config yields one entry
// per URL already; from the environment viper hands AIHUB_NEWS_FEEDS over
// split on whitespace only, so commas are accepted as separators too.
func splitFeeds(raw []string) []string {
	var feeds []string
	for _, entry := range raw {
		for _, feed := range strings.Fields(strings.ReplaceAll(entry, ",", " ")) {
			feeds = append(feeds, feed)
		}
	}
	return feeds
}
