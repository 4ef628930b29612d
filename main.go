package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/carotene/sharess-go/api"
	"github.com/carotene/sharess-go/api/notifyhub"
	"github.com/carotene/sharess-go/catalog"
	"github.com/carotene/sharess-go/registry"
	"github.com/carotene/sharess-go/share"
	"github.com/carotene/sharess-go/tool"
)

func main() {
	cfg := tool.SetFlags()
	appCfg, err := tool.LoadConfig(cfg.UseConfigPath)
	if err != nil {
		tool.DefaultLogger.Fatalf("%v", err)
	}

	tool.InitLogger()
	tool.SetLogMode(cfg.Log)

	if cfg.UseRegistryURL != "" {
		appCfg.RegistryURL = cfg.UseRegistryURL
	}
	if cfg.UsePattern != "" {
		appCfg.ScreenshotPattern = cfg.UsePattern
	}

	homeDir, err := tool.ResolveHomeDir(cfg.UseHomeDir)
	if err != nil {
		tool.DefaultLogger.Fatalf("%v", err)
	}
	cacheDir, err := tool.ResolveCacheDir(cfg.UseCacheDir, homeDir)
	if err != nil {
		tool.DefaultLogger.Fatalf("%v", err)
	}
	tool.DefaultLogger.Infof("HOMEDIR: %s", homeDir)
	tool.DefaultLogger.Infof("CACHEDIR: %s", cacheDir)

	pattern := appCfg.ScreenshotPattern
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(homeDir, pattern)
	}

	// The registry must be on disk before the catalog is built; the fetch is
	// bounded so a dead network cannot stall startup.
	timeout := time.Duration(appCfg.FetchTimeoutSec) * time.Second
	reg := registry.New(cacheDir, appCfg.RegistryURL, tool.NewHTTPClient(timeout))
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	reg.EnsureFresh(ctx)
	cancel()
	if err := reg.Load(); err != nil {
		tool.DefaultLogger.Fatalf("%v", err)
	}
	tool.DefaultLogger.Infof("Application registry loaded: %d titles", reg.Len())

	cat := catalog.New(reg)
	if err := cat.Scan(pattern); err != nil {
		tool.DefaultLogger.Fatalf("%v", err)
	}
	images, apps := cat.Counts()
	tool.DefaultLogger.Infof("Catalog built: %d images across %d applications", images, apps)

	session := share.NewSession(appCfg.Scheme)
	hub := notifyhub.New()
	server := api.NewServer(session, cat, hub, pattern)
	go func() {
		if err := server.Start(); err != nil {
			tool.DefaultLogger.Fatalf("Share server startup failed: %v", err)
		}
	}()

	select {}
}
