package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/cordialsys/xcm/config/constants"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// XCM_CONFIG wins, then the working directory, its parent and XCM_HOME
	v.SetConfigFile(os.Getenv(constants.ConfigEnv))
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	v.AddConfigPath(constants.DefaultHome)
	return v
}

func isMissingConfig(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such file") || strings.Contains(msg, "not found in")
}

// RequireConfig reads the config file into dst.
// When section is set only that top level key is decoded.
// With non-nil defaults a missing config file is not an error, and fields left
// unset by the file are filled from the defaults.
func RequireConfig(section string, dst interface{}, defaults interface{}) error {
	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		if defaults == nil || !isMissingConfig(err) {
			return fmt.Errorf("fatal error reading config file: %w", err)
		}
		return copyYaml(defaults, dst)
	}

	var err error
	if section != "" {
		// viper can't decode a sub tree directly
		err = copyYaml(v.GetStringMap(section), dst)
	} else {
		err = v.Unmarshal(dst)
	}
	if err != nil {
		return err
	}
	if defaults == nil {
		return nil
	}
	return ApplyDefaults(defaults, dst, dst)
}

func copyYaml(src interface{}, dst interface{}) error {
	bz, err := yaml.Marshal(src)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(bz, dst)
}
