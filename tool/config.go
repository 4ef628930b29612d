package tool

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/carotene/sharess-go/types"
)

var (
	ConfigPath    = "config.yaml" // be aware that it can be changed, default to ./config.yaml
	CurrentConfig types.AppConfig
)

func defaultConfig() types.AppConfig {
	return types.AppConfig{
		RegistryURL:       "https://api.steampowered.com/ISteamApps/GetAppList/v2/",
		ScreenshotPattern: ".steam/steam/userdata/*/*/remote/*/screenshots/*.jpg",
		FetchTimeoutSec:   5,
		Scheme:            "http", // share links are plain http, the token is the whole gate.
	}
}

// LoadConfig reads the yaml config from path, creating it with defaults when missing.
func LoadConfig(path string) (types.AppConfig, error) {
	if path == "" {
		path = ConfigPath
	}
	ConfigPath = path

	cfg := defaultConfig()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			if writeErr := writeDefaultConfig(path, cfg); writeErr != nil {
				return cfg, fmt.Errorf("config file not found, and failed to generate default config: %v", writeErr)
			}
			DefaultLogger.Infof("Created new config file at %s", path)
			CurrentConfig = cfg
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %v", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config file path is a directory: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %v", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %v", err)
	}

	if cfg.RegistryURL == "" {
		cfg.RegistryURL = defaultConfig().RegistryURL
	}
	if cfg.ScreenshotPattern == "" {
		cfg.ScreenshotPattern = defaultConfig().ScreenshotPattern
	}
	if cfg.FetchTimeoutSec <= 0 {
		cfg.FetchTimeoutSec = defaultConfig().FetchTimeoutSec
	}
	if cfg.Scheme == "" {
		cfg.Scheme = "http"
	}

	CurrentConfig = cfg
	return cfg, nil
}

func writeDefaultConfig(path string, cfg types.AppConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func GetCurrentConfig() *types.AppConfig {
	return &CurrentConfig
}
