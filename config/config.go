package config

import (
	"os"
	"sync"

	"imagehost/logutils"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Database struct {
		// Driver is either "postgres" or "sqlite".
		Driver   string `yaml:"driver"`
		Postgres struct {
			Host     string `yaml:"host"`
			Port     string `yaml:"port"`
			DBName   string `yaml:"dbname"`
			User     string `yaml:"user"`
			Password string `yaml:"password"`
			SSLMode  string `yaml:"sslmode"`
			TimeZone string `yaml:"TimeZone"`
		} `yaml:"postgres"`
		SQLitePath string `yaml:"sqlitePath"`
	} `yaml:"database"`
	// AssetRoot is the directory holding uploaded image files.
	AssetRoot string `yaml:"assetRoot"`
}

var (
	once   sync.Once
	config *Config
)

func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

// initConfig reads the configuration file from IMAGEHOST_CONFIG
// or falls back to ./etc/config.yaml.
func initConfig() *Config {
	config := &Config{}
	configPath := os.Getenv("IMAGEHOST_CONFIG")
	if configPath == "" {
		configPath = "./etc/config.yaml"
	}

	err := readConfig(configPath, config)
	if err != nil {
		logutils.Log.Error("init config", err)
		panic(err)
	}
	applyDefaults(config)
	return config
}

func readConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return err
	}
	return nil
}

func applyDefaults(config *Config) {
	if config.Server.Addr == "" {
		config.Server.Addr = ":7320"
	}
	if config.Database.Driver == "" {
		config.Database.Driver = "postgres"
	}
	if config.Database.SQLitePath == "" {
		config.Database.SQLitePath = "imagehost.db"
	}
	if config.AssetRoot == "" {
		config.AssetRoot = "images"
	}
}
