package tool

import "flag"

// Config holds runtime overrides from CLI flags.
type Config struct {
	Log            string
	UseConfigPath  string
	UseHomeDir     string // overrides HOMEDIR/HOME resolution
	UseCacheDir    string // overrides CACHEDIR resolution
	UseRegistryURL string
	UsePattern     string // overrides the screenshot glob from config
}

// SetFlags parses CLI flags and returns the override config.
func SetFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.Log, "log", "", "log mode: dev|prod|none")
	flag.StringVar(&cfg.UseConfigPath, "useConfigPath", "", "override config file path")
	flag.StringVar(&cfg.UseHomeDir, "useHomeDir", "", "override home directory (default: HOMEDIR, then HOME)")
	flag.StringVar(&cfg.UseCacheDir, "useCacheDir", "", "override cache directory (default: CACHEDIR, then ~/.cache/sharess)")
	flag.StringVar(&cfg.UseRegistryURL, "useRegistryUrl", "", "override application registry URL")
	flag.StringVar(&cfg.UsePattern, "usePattern", "", "override screenshot search glob")
	flag.Parse()
	return cfg
}
