package types

// AppConfig represents the application configuration loaded from config file
type AppConfig struct {
	RegistryURL       string `yaml:"registryUrl"`
	ScreenshotPattern string `yaml:"screenshotPattern"` // glob, joined to the home dir unless absolute
	FetchTimeoutSec   int    `yaml:"fetchTimeoutSeconds"`
	Scheme            string `yaml:"scheme"`
}
