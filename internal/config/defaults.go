package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	keyLogLevel  = "log.level"
	keyLogFormat = "log.format"
	keyColorDir  = "color.dir"
	keyColorExec = "color.exec"
	keyColorLink = "color.link"
	keyCharset   = "charset"
	keyNoColor   = "no_color"
)

// loadDefaults layers built-in values, config.yaml in configDir and RTREE_*
// environment variables, in increasing precedence.
func loadDefaults(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(keyLogLevel, "error")
	v.SetDefault(keyLogFormat, "console")
	v.SetDefault(keyColorDir, "navy")
	v.SetDefault(keyColorExec, "green")
	v.SetDefault(keyColorLink, "teal")
	v.SetDefault(keyCharset, "utf-8")

	v.SetEnvPrefix("RTREE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(keyNoColor, "NO_COLOR"); err != nil {
		return nil, err
	}

	if configDir == "" {
		return v, nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func userConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "rtree")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rtree")
}
