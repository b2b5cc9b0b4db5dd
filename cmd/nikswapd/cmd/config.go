package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/nikswap/nikswap/api"
)

const envPrefix = "NIKSWAP"

// app.toml keys
const (
	keyLogLevel       = "log_level"
	keyDBBackend      = "db_backend"
	keyAPIAddress     = "api.address"
	keyAPIRateLimit   = "api.rate_limit_rps"
	keyAPIReadTimeout = "api.read_timeout"
)

// Config is the contents of app.toml.
type Config struct {
	LogLevel  string
	DBBackend string
	API       api.Config
}

// DefaultConfig returns the configuration init writes.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		DBBackend: string(dbm.GoLevelDBBackend),
		API:       *api.DefaultConfig(),
	}
}

func configFile(home string) string  { return filepath.Join(home, "config", "app.toml") }
func genesisFile(home string) string { return filepath.Join(home, "config", "genesis.json") }
func dataDir(home string) string     { return filepath.Join(home, "data") }

// newViper returns a viper instance reading <home>/config/app.toml, with
// NIKSWAP_* environment overrides (api.address -> NIKSWAP_API_ADDRESS).
func newViper(home string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configFile(home))
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault(keyLogLevel, def.LogLevel)
	v.SetDefault(keyDBBackend, def.DBBackend)
	v.SetDefault(keyAPIAddress, def.API.Address)
	v.SetDefault(keyAPIRateLimit, def.API.RateLimitRPS)
	v.SetDefault(keyAPIReadTimeout, def.API.ReadTimeout.String())
	return v
}

// LoadConfig reads app.toml if present and resolves every key. A missing
// file is not an error: defaults and the environment still apply.
func LoadConfig(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	cfg.LogLevel = cast.ToString(v.Get(keyLogLevel))
	cfg.DBBackend = cast.ToString(v.Get(keyDBBackend))
	cfg.API.Address = cast.ToString(v.Get(keyAPIAddress))

	rps, err := cast.ToIntE(v.Get(keyAPIRateLimit))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", keyAPIRateLimit, err)
	}
	if rps < 0 {
		return Config{}, fmt.Errorf("%s must not be negative", keyAPIRateLimit)
	}
	cfg.API.RateLimitRPS = rps

	timeout, err := cast.ToDurationE(v.Get(keyAPIReadTimeout))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", keyAPIReadTimeout, err)
	}
	cfg.API.ReadTimeout = timeout

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultConfig().LogLevel
	}
	return cfg, nil
}

// WriteConfigFile writes cfg as app.toml at path.
func WriteConfigFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	v := viper.New()
	v.Set(keyLogLevel, cfg.LogLevel)
	v.Set(keyDBBackend, cfg.DBBackend)
	v.Set(keyAPIAddress, cfg.API.Address)
	v.Set(keyAPIRateLimit, cfg.API.RateLimitRPS)
	v.Set(keyAPIReadTimeout, cfg.API.ReadTimeout.String())
	return v.WriteConfigAs(path)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
