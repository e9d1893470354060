package config

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const LogLevelEnv = "XCM_LOG_LEVEL"
const LogFormatEnv = "XCM_LOG_FORMAT"

var formatters = map[string]logrus.Formatter{
	"json":       &logrus.JSONFormatter{},
	"text":       &logrus.TextFormatter{DisableColors: true},
	"color-text": &logrus.TextFormatter{ForceColors: true},
}

// ConfigureLogger sets up the global logrus logger.
// An explicit level takes precedence over XCM_LOG_LEVEL; unknown levels fall back to info.
func ConfigureLogger(levelMaybe ...string) {
	time.Local = time.FixedZone("UTC", 0)

	level := os.Getenv(LogLevelEnv)
	if len(levelMaybe) > 0 {
		level = levelMaybe[0]
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	format := strings.ToLower(os.Getenv(LogFormatEnv))
	if format == "" {
		format = "color-text"
	}
	formatter, ok := formatters[format]
	if !ok {
		logrus.WithFields(logrus.Fields{
			"format":  format,
			"options": []string{"json", "text", "color-text"},
		}).Warn("unknown format")
		return
	}
	logrus.SetFormatter(formatter)
}
