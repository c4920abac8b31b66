package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"stay_loader/errs"
)

// EnvPrefix namespaces environment overrides, e.g. STAY_DATABASE_URL.
const EnvPrefix = "STAY"

// DefaultSeed reproduces the reference dataset shipped with the project.
const DefaultSeed = 100

// DefaultHospitals is the pool hospital names are synthesized from.
var DefaultHospitals = []string{
	"Northwestern Hospital", "Central DuPage Hospital", "LaGrange Hospital", "Elmhurst Hospital",
	"Swedish Hospital", "Good Samaritan Hospital", "Saint Joseph Hospital", "Resurrection Hospital",
	"Hinsdale Hospital", "Edward Hospital", "Alexian Bros. Hospital", "Mercy Hospital", "Palos Hospital",
}

type Config struct {
	DatabaseURL  string   `mapstructure:"database_url"`
	DBMaxConns   int32    `mapstructure:"db_max_conns"`
	Input        string   `mapstructure:"input"`
	Names        string   `mapstructure:"names"`
	Export       string   `mapstructure:"export"`
	Seed         uint64   `mapstructure:"seed"`
	HospitalPool []string `mapstructure:"hospital_pool"`
	LogLevel     string   `mapstructure:"log_level"`
	LogFormat    string   `mapstructure:"log_format"`
	MetricsFile  string   `mapstructure:"metrics_file"`
}

// flag name → config key
var flagKeys = map[string]string{
	"database-url": "database_url",
	"db-max-conns": "db_max_conns",
	"input":        "input",
	"names":        "names",
	"export":       "export",
	"seed":         "seed",
	"hospitals":    "hospital_pool",
	"log-level":    "log_level",
	"log-format":   "log_format",
	"metrics-file": "metrics_file",
}

// RegisterFlags adds the persistent flags shared by every command.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a YAML config file")
	fs.String("database-url", "", "PostgreSQL connection string")
	fs.Int32("db-max-conns", 4, "Maximum pooled connections")
	fs.String("input", "", "Hospital stay CSV to load")
	fs.String("names", "", "Name pool CSV (First Name, Last Name, Gender)")
	fs.String("export", "", "De-identified export path (.csv or .parquet)")
	fs.Uint64("seed", DefaultSeed, "Seed for synthetic identities")
	fs.StringSlice("hospitals", nil, "Hospital name pool (empty keeps source names)")
	fs.String("log-level", "info", "Log level: debug, info, warn, error")
	fs.String("log-format", "console", "Log format: console or json")
	fs.String("metrics-file", "", "Write Prometheus metrics to this textfile after a build")
}

// Load resolves settings from defaults, an optional config file, STAY_*
// environment variables and finally explicitly set flags.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("db_max_conns", 4)
	v.SetDefault("seed", DefaultSeed)
	v.SetDefault("hospital_pool", DefaultHospitals)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	// Bind env vars explicitly so Unmarshal picks them up
	for _, key := range flagKeys {
		v.BindEnv(key)
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return nil, errs.Configurationf("read config file %s: %v", f.Value.String(), err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// ValidateStore checks the settings every store-touching command needs.
func (c *Config) ValidateStore() error {
	if c.DatabaseURL == "" {
		return errs.Configurationf("database_url is required (--database-url or %s_DATABASE_URL)", EnvPrefix)
	}
	if c.DBMaxConns < 1 {
		return errs.Configurationf("db_max_conns must be positive, got %d", c.DBMaxConns)
	}
	return nil
}

// ValidateBuild checks the settings a build needs.
func (c *Config) ValidateBuild() error {
	if err := c.ValidateStore(); err != nil {
		return err
	}
	if c.Input == "" {
		return errs.Configurationf("input is required (--input or %s_INPUT)", EnvPrefix)
	}
	if c.Names == "" {
		return errs.Configurationf("names is required (--names or %s_NAMES)", EnvPrefix)
	}
	return nil
}
