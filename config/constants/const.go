package constants

import (
	"os"
	"path/filepath"
)

const DefaultHomeEnv string = "XCM_HOME"
const ConfigEnv string = "XCM_CONFIG"

// DefaultHome is $XCM_HOME, else ~/.xcm
var DefaultHome string

func init() {
	DefaultHome = os.Getenv(DefaultHomeEnv)
	if DefaultHome != "" {
		return
	}
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		DefaultHome = "/data"
		return
	}
	DefaultHome = filepath.Join(userHomeDir, ".xcm")
}
