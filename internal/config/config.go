package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

/*
база заказов: переменные окружения ОС ECOMMERCE_DB_HOST, ECOMMERCE_DB_USER, ECOMMERCE_DB_PASSWORD, ECOMMERCE_DB_NAME;
база записей на курсы: переменные окружения ОС EDXAPP_DB_HOST, EDXAPP_DB_USER, EDXAPP_DB_PASSWORD, EDXAPP_DB_NAME;
окно поиска заказов в минутах: переменная окружения ОС ORDER_WINDOW_START_TIME или флаг -w;
уровень логирования: переменная окружения ОС LOG_LEVEL или флаг -l.
*/

const (
	DriverMySQL = "mysql"
	DriverPgx   = "pgx"
)

var ErrWindowNotPositive = errors.New("order window must be a positive number of minutes")

type MissingSettingError struct {
	Variable string
}

func (e *MissingSettingError) Error() string {
	return fmt.Sprintf("Setting %s is required", e.Variable)
}

type UnknownDriverError struct {
	Variable string
	Driver   string
}

func (e *UnknownDriverError) Error() string {
	return fmt.Sprintf("Unknown database driver %q in %s", e.Driver, e.Variable)
}

type Database struct {
	Driver   string `env:"DRIVER" envDefault:"mysql"`
	Host     string `env:"HOST"`
	Port     int    `env:"PORT"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type Alert struct {
	WebhookURL string `env:"ALERT_WEBHOOK_URL"`
	Secret     string `env:"ALERT_WEBHOOK_SECRET"`
	Retries    int    `env:"ALERT_WEBHOOK_RETRIES" envDefault:"3"`
}

type AuditConfig struct {
	Ecommerce Database `envPrefix:"ECOMMERCE_DB_"`
	Edxapp    Database `envPrefix:"EDXAPP_DB_"`

	// Minutes to look back when retrieving orders. Taken from -w when
	// ORDER_WINDOW_START_TIME is unset.
	WindowMinutes int
	EnvWindow     *int `env:"ORDER_WINDOW_START_TIME"`

	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s"`
	QueryTimeout   time.Duration `env:"DB_QUERY_TIMEOUT" envDefault:"60s"`

	Log   Log
	Alert Alert
}

func (c *AuditConfig) Window() time.Duration {
	return time.Duration(c.WindowMinutes) * time.Minute
}

// NewConfig reads the environment first and falls back to command line flags.
func NewConfig(args []string) (*AuditConfig, error) {
	var params AuditConfig
	err := env.Parse(&params)
	if err != nil {
		return nil, err
	}

	var commandLineParams AuditConfig

	fs := flag.NewFlagSet("fulfillment-audit", flag.ContinueOnError)
	fs.IntVar(&commandLineParams.WindowMinutes, "w", 15, "Minutes to look back when retrieving orders")
	fs.StringVar(&commandLineParams.Log.Level, "l", "info", "Log level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	params.WindowMinutes = commandLineParams.WindowMinutes
	if params.EnvWindow != nil {
		params.WindowMinutes = *params.EnvWindow
	}
	if params.Log.Level == "" {
		params.Log.Level = commandLineParams.Log.Level
	}

	if err := params.validate(); err != nil {
		return nil, err
	}
	return &params, nil
}

func (c *AuditConfig) validate() error {
	if c.WindowMinutes <= 0 {
		return fmt.Errorf("%w: got %d", ErrWindowNotPositive, c.WindowMinutes)
	}
	if err := c.Ecommerce.validate("ECOMMERCE_DB_"); err != nil {
		return err
	}
	return c.Edxapp.validate("EDXAPP_DB_")
}

func (d *Database) validate(prefix string) error {
	if d.Driver != DriverMySQL && d.Driver != DriverPgx {
		return &UnknownDriverError{Variable: prefix + "DRIVER", Driver: d.Driver}
	}
	required := []struct {
		name  string
		value string
	}{
		{"HOST", d.Host},
		{"USER", d.User},
		{"NAME", d.Name},
	}
	for _, r := range required {
		if r.value == "" {
			return &MissingSettingError{Variable: prefix + r.name}
		}
	}
	return nil
}
