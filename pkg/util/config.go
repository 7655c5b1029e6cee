package util

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ReadConfig. read config file "config" from configDir and let environment variables override it.
func ReadConfig(configDir string) error {
	viper.SetConfigName("config")
	viper.AddConfigPath(configDir)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// defaults + env only
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
