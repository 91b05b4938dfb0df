package config

import (
	"os"
	"path"

	"github.com/spf13/viper"
)

type MiscConfig struct {
	ConcurrencyLimit int `mapstructure:"ConcurrencyLimit"`
	Port             int `mapstructure:"Port"`
}

type NotificationsConfig struct {
	Sound              bool `mapstructure:"Sound"`
	ProgressIntervalMs int  `mapstructure:"ProgressIntervalMs"`
}

type Config struct {
	Misc          MiscConfig          `mapstructure:"Misc"`
	Notifications NotificationsConfig `mapstructure:"Notifications"`
}

var viperConf *viper.Viper = viper.New()

func getConfig() (Config, error) {
	var config Config
	if err := viperConf.Unmarshal(&config); err != nil {
		return config, err
	}
	return config, nil
}

func DefaultConfigFileName() string {
	return "nitroshare-config"
}

func ReadConfig(configFileName string) (Config, error) {
	viperConf.SetConfigName(configFileName) // name of config file (without extension)
	viperConf.SetConfigType("yaml")

	viperConf.SetDefault("Misc.ConcurrencyLimit", 8)
	viperConf.SetDefault("Misc.Port", 8756)
	viperConf.SetDefault("Notifications.Sound", false)
	viperConf.SetDefault("Notifications.ProgressIntervalMs", 1000)

	userConfigDir, _ := os.UserConfigDir()
	executablePath, _ := os.Executable()

	// Give priority to the config file found next to the executable
	viperConf.AddConfigPath(path.Dir(executablePath))
	viperConf.AddConfigPath(path.Join(userConfigDir, "nitroshare"))

	if err := viperConf.ReadInConfig(); err != nil {
		// missing file falls back to defaults, anything else is fatal
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, err
		}
	}
	return getConfig()
}

// SoundEnabled reads the notification sound preference fresh on every call,
// so a change saved mid-transfer applies to the next notification built.
func SoundEnabled() bool {
	return viperConf.GetBool("Notifications.Sound")
}

func GetCurrentConfigFilePath() string {
	return viperConf.ConfigFileUsed()
}

func GetFullConfig() map[string]any {
	return viperConf.AllSettings()
}

func SetConfKey(key string, value any) {
	viperConf.Set(key, value)
}

func SaveConfig() error {
	return viperConf.WriteConfig()
}
