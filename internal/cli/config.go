package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/transitlab/netlint/pkg/errors"
)

// Config is the netlint.toml file layout. All fields are optional;
// zero values fall back to built-in defaults.
type Config struct {
	// CacheDir overrides the XDG cache directory for analysis reports.
	CacheDir string `toml:"cache_dir"`

	// Radius is the default minimum trip distance for demand validation.
	Radius float64 `toml:"radius"`

	Server ServerConfig `toml:"server"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`

	// RedisAddr enables the shared Redis cache when set, e.g. "localhost:6379".
	RedisAddr string `toml:"redis_addr"`

	// MongoURI enables durable report storage when set,
	// e.g. "mongodb://localhost:27017". Without it reports live in memory.
	MongoURI string `toml:"mongo_uri"`

	// MongoDatabase is the database name for report storage.
	MongoDatabase string `toml:"mongo_database"`
}

// defaultConfig returns the built-in defaults applied before any file.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:          ":8080",
			MongoDatabase: appName,
		},
	}
}

// LoadConfig reads the TOML configuration at path. An empty path means
// ./netlint.toml, which may be absent; an explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = configFile
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.MongoDatabase == "" {
		cfg.Server.MongoDatabase = appName
	}
	return cfg, nil
}
