package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"wikidot-applications-deleter/internal/i18n"
	"wikidot-applications-deleter/internal/logger"

	"github.com/spf13/viper"
)

const AppName = "wikidot-applications-deleter"

type Config struct {
	UserDataDir  string        `mapstructure:"user_data_dir"` // Browser profile holding the Wikidot session cookies
	Headless     bool          `mapstructure:"headless"`
	MessagesURL  string        `mapstructure:"messages_url"`
	BatchSize    int           `mapstructure:"batch_size"`
	BatchDelay   time.Duration `mapstructure:"batch_delay"`    // Pause before each batch when there is more than one
	EmailAlertTo string        `mapstructure:"email_alert_to"` // Destination email for alerts (uses system msmtp)
}

var AppConfig Config

// Dir es el directorio de configuración del usuario
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", AppName)
}

// SetDefaults registra los valores por defecto en viper
func SetDefaults() {
	viper.SetDefault("user_data_dir", filepath.Join(Dir(), "browser_data"))
	viper.SetDefault("headless", true)
	viper.SetDefault("messages_url", "https://www.wikidot.com/account/messages")
	viper.SetDefault("batch_size", 100)
	viper.SetDefault("batch_delay", 1500*time.Millisecond)
	viper.SetDefault("email_alert_to", "")
}

// Load lee la configuración (explícita si path no está vacío) y la vuelca en AppConfig
func Load(path string) error {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		// 1. Define config filename
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		// 2. Define search paths based on OS
		if runtime.GOOS == "linux" {
			viper.AddConfigPath("/etc/" + AppName + "/")
		}
		viper.AddConfigPath(Dir())
		viper.AddConfigPath(".") // Search in current folder too
	}

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		logger.Debug("%s", i18n.T("config_missing"))
	}

	return viper.Unmarshal(&AppConfig)
}

func InitConfig() {
	if err := Load(viper.GetString("config")); err != nil {
		logger.Error(i18n.T("config_read_error"), err)
		os.Exit(1)
	}
}
