package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SystemConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
}

type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

// DatabaseConfig selects the key-value store backend. Type "bolt" keeps
// everything in an embedded bbolt file under the workdir; "postgres" stores
// records in a single kv_store table addressed by Dsn.
type DatabaseConfig struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`
	Dsn  string `yaml:"dsn"`
}

// TwilioConfig carries the messaging-provider credentials. All three of
// AccountSid, AuthToken and WhatsappFrom must be set for notifications to be
// attempted; when any is empty the dispatcher silently skips delivery.
type TwilioConfig struct {
	AccountSid   string `yaml:"account_sid"`
	AuthToken    string `yaml:"auth_token"`
	WhatsappFrom string `yaml:"whatsapp_from"`
	AdminPhone   string `yaml:"admin_phone"`
}

type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type MaintenanceConfig struct {
	// CleanupCron is a cron expression for periodic catalog cleanup.
	// Empty disables the scheduled job.
	CleanupCron string `yaml:"cleanup_cron"`
}

type AppConfig struct {
	System      SystemConfig      `yaml:"system"`
	Web         WebConfig         `yaml:"web"`
	Logger      LoggerConfig      `yaml:"logger"`
	Database    DatabaseConfig    `yaml:"database"`
	Twilio      TwilioConfig      `yaml:"twilio"`
	Admin       AdminConfig       `yaml:"admin"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
}

var DefaultAppConfig = &AppConfig{
	System: SystemConfig{
		Appid:    "TrueThread",
		Location: "Asia/Kolkata",
		Workdir:  "/var/truethread",
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 1816,
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/truethread/storefront.log",
	},
	Database: DatabaseConfig{
		Type: "bolt",
		Name: "storefront",
	},
	Admin: AdminConfig{
		Username: "admin",
		Password: "admin123",
	},
}

// LoadConfig reads the YAML configuration file and applies environment
// overrides on top. A missing file is not an error, defaults are used.
func LoadConfig(cfile string) (*AppConfig, error) {
	cfg := *DefaultAppConfig
	if cfile != "" {
		data, err := os.ReadFile(cfile)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, errors.Wrap(err, "parse config file")
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "read config file")
		}
	}
	cfg.applyEnv()
	return &cfg, nil
}

func (c *AppConfig) applyEnv() {
	setEnvString(&c.System.Workdir, "TRUETHREAD_WORKDIR")
	setEnvString(&c.System.Location, "TRUETHREAD_LOCATION")
	setEnvString(&c.Web.Host, "TRUETHREAD_WEB_HOST")
	setEnvInt(&c.Web.Port, "TRUETHREAD_WEB_PORT")
	setEnvString(&c.Logger.Mode, "TRUETHREAD_LOGGER_MODE")
	setEnvBool(&c.Logger.FileEnable, "TRUETHREAD_LOGGER_FILE_ENABLE")
	setEnvString(&c.Logger.Filename, "TRUETHREAD_LOGGER_FILENAME")
	setEnvString(&c.Database.Type, "TRUETHREAD_DB_TYPE")
	setEnvString(&c.Database.Name, "TRUETHREAD_DB_NAME")
	setEnvString(&c.Database.Dsn, "TRUETHREAD_DB_DSN")
	setEnvString(&c.Twilio.AccountSid, "TWILIO_ACCOUNT_SID")
	setEnvString(&c.Twilio.AuthToken, "TWILIO_AUTH_TOKEN")
	setEnvString(&c.Twilio.WhatsappFrom, "TWILIO_WHATSAPP_NUMBER")
	setEnvString(&c.Twilio.AdminPhone, "TWILIO_ADMIN_PHONE")
	setEnvString(&c.Admin.Username, "TRUETHREAD_ADMIN_USERNAME")
	setEnvString(&c.Admin.Password, "TRUETHREAD_ADMIN_PASSWORD")
	setEnvString(&c.Maintenance.CleanupCron, "TRUETHREAD_CLEANUP_CRON")
}

func setEnvString(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func setEnvInt(target *int, key string) {
	if v := os.Getenv(key); v != "" {
		*target = cast.ToInt(v)
	}
}

func setEnvBool(target *bool, key string) {
	if v := os.Getenv(key); v != "" {
		*target = cast.ToBool(v)
	}
}
