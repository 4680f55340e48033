package config

import (
	"os"
	"path"
	"strings"

	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DBConfig Database configuration
type DBConfig struct {
	Type     string `yaml:"type"` // postgres or sqlite
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Passwd   string `yaml:"passwd"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConn  int    `yaml:"max_conn"`
	IdleConn int    `yaml:"idle_conn"`
	Debug    bool   `yaml:"debug"`
	Seed     bool   `yaml:"seed"` // insert the demo catalog into an empty table
}

// SysConfig System configuration
type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
}

// WebConfig Web server configuration
type WebConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	Metrics bool   `yaml:"metrics"`
	Swagger bool   `yaml:"swagger"`
}

// LogConfig Log configuration
type LogConfig struct {
	Mode       string `yaml:"mode"` // development or production
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system"`
	Web      WebConfig `yaml:"web"`
	Database DBConfig  `yaml:"database"`
	Logger   LogConfig `yaml:"logger"`
}

// GetLogDir returns the log directory under the workdir
func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

// GetDataDir returns the data directory under the workdir
func (c *AppConfig) GetDataDir() string {
	return path.Join(c.System.Workdir, "data")
}

func (c *AppConfig) initDirs() {
	_ = os.MkdirAll(c.GetLogDir(), 0o755)
	_ = os.MkdirAll(c.GetDataDir(), 0o755)
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "TinyShop",
		Location: "UTC",
		Workdir:  "/var/tinyshop",
		Debug:    true,
	},
	Web: WebConfig{
		Host:    "0.0.0.0",
		Port:    5228,
		Metrics: true,
		Swagger: true,
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "tinyshop",
		User:     "postgres",
		Passwd:   "myroot",
		SSLMode:  "disable",
		MaxConn:  100,
		IdleConn: 10,
		Debug:    false,
		Seed:     true,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "/var/tinyshop/logs/tinyshop.log",
	},
}

// LoadConfig reads the YAML file at cfile when it exists, then applies
// TINYSHOP_* environment overrides. An empty cfile uses defaults and env only.
func LoadConfig(cfile string) *AppConfig {
	cfg := *DefaultAppConfig
	if cfile != "" {
		data, err := os.ReadFile(cfile)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				zap.S().Errorf("parse config file %s failed: %v", cfile, err)
			}
		case os.IsNotExist(err):
			zap.S().Warnf("config file %s not found, using defaults", cfile)
		default:
			zap.S().Errorf("read config file %s failed: %v", cfile, err)
		}
	}

	setEnvValue("TINYSHOP_SYSTEM_WORKER_DIR", &cfg.System.Workdir)
	setEnvValue("TINYSHOP_SYSTEM_LOCATION", &cfg.System.Location)
	setEnvBoolValue("TINYSHOP_SYSTEM_DEBUG", &cfg.System.Debug)

	setEnvValue("TINYSHOP_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("TINYSHOP_WEB_PORT", &cfg.Web.Port)
	setEnvBoolValue("TINYSHOP_WEB_METRICS", &cfg.Web.Metrics)
	setEnvBoolValue("TINYSHOP_WEB_SWAGGER", &cfg.Web.Swagger)

	setEnvValue("TINYSHOP_DB_TYPE", &cfg.Database.Type)
	setEnvValue("TINYSHOP_DB_HOST", &cfg.Database.Host)
	setEnvIntValue("TINYSHOP_DB_PORT", &cfg.Database.Port)
	setEnvValue("TINYSHOP_DB_NAME", &cfg.Database.Name)
	setEnvValue("TINYSHOP_DB_USER", &cfg.Database.User)
	setEnvValue("TINYSHOP_DB_PWD", &cfg.Database.Passwd)
	setEnvValue("TINYSHOP_DB_SSLMODE", &cfg.Database.SSLMode)
	setEnvIntValue("TINYSHOP_DB_MAX_CONN", &cfg.Database.MaxConn)
	setEnvIntValue("TINYSHOP_DB_IDLE_CONN", &cfg.Database.IdleConn)
	setEnvBoolValue("TINYSHOP_DB_DEBUG", &cfg.Database.Debug)
	setEnvBoolValue("TINYSHOP_DB_SEED", &cfg.Database.Seed)

	setEnvValue("TINYSHOP_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBoolValue("TINYSHOP_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)
	setEnvValue("TINYSHOP_LOGGER_FILENAME", &cfg.Logger.Filename)

	cfg.Database.Type = strings.ToLower(strings.TrimSpace(cfg.Database.Type))
	cfg.initDirs()
	return &cfg
}

func setEnvValue(name string, val *string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		*val = v
	}
}

func setEnvBoolValue(name string, val *bool) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		if b, err := cast.ToBoolE(v); err == nil {
			*val = b
		}
	}
}

func setEnvIntValue(name string, val *int) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		if i, err := cast.ToIntE(v); err == nil {
			*val = i
		}
	}
}
