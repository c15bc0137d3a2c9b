package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("catalog_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		viper.SetDefault("intake.session_ttl", "1h")
		viper.SetDefault("intake.janitor_interval", "5m")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel: viper.GetString("general.log_level"),
			},
			Postgresql: PostgresqlConfig{
				URL: viper.GetString("database.url"),
				DSN: viper.GetString("database.dsn"),
			},
			Intake: IntakeConfig{
				SessionTTL:      viper.GetDuration("intake.session_ttl"),
				JanitorInterval: viper.GetDuration("intake.janitor_interval"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General    GeneralConfig
	Postgresql PostgresqlConfig
	Intake     IntakeConfig
}

type GeneralConfig struct {
	LogLevel string
}

type PostgresqlConfig struct {
	URL string
	DSN string
}

// IntakeConfig bounds how long parsed import sessions stay resident.
type IntakeConfig struct {
	SessionTTL      time.Duration
	JanitorInterval time.Duration
}
