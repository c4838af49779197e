package config

import (
	"os"
	"path/filepath"

	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
	"github.com/spf13/viper"
)

type ConfigType string

const (
	YAML ConfigType = "yaml"

	// ConfigFileName is the project configuration file looked up when no
	// --config flag was provided.
	ConfigFileName = "forge.yaml"
)

// ReadConfigFile reads a configuration file into a new viper instance.
func ReadConfigFile(configPath string, configType ConfigType) (config *viper.Viper, err error) {
	config = viper.New()
	config.SetConfigType(string(configType))
	config.SetConfigFile(configPath)

	f, err := os.Open(configPath)
	if err != nil {
		return config, errorutils.CheckError(err)
	}
	defer func() {
		err = errorutils.CheckError(f.Close())
	}()
	err = config.ReadConfig(f)
	return config, errorutils.CheckError(err)
}

// FindConfigFilePath looks for the project configuration file in the provided
// dir or in one of its parent dirs. Returns false when no file was found.
func FindConfigFilePath(fromDir string) (string, bool) {
	currentDir := fromDir
	for {
		filePath := filepath.Join(currentDir, ConfigFileName)
		if _, err := os.Stat(filePath); err == nil {
			log.Debug("Found config file at", filePath)
			return filePath, true
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}
