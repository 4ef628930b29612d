package controllers

import (
	"net/http"
	"strings"
	"time"

	ttlworker "github.com/FloatTech/ttl"
	"github.com/gin-gonic/gin"

	"github.com/carotene/sharess-go/catalog"
	"github.com/carotene/sharess-go/tool"
	"github.com/carotene/sharess-go/types"
)

const scanCacheKey = "catalog_scan"

// scanCache marks a completed scan as fresh for an hour. Listing endpoints
// rescan when the marker has expired or refresh-now was passed.
var scanCache = ttlworker.NewCache[string, bool](time.Hour)

// CatalogController exposes the image catalog to the local UI.
type CatalogController struct {
	catalog *catalog.Catalog
	pattern string
}

// NewCatalogController creates the controller around an already-built catalog.
func NewCatalogController(cat *catalog.Catalog, pattern string) *CatalogController {
	return &CatalogController{catalog: cat, pattern: pattern}
}

func (ctrl *CatalogController) ensureScanned(force bool) error {
	if force {
		scanCache.Delete(scanCacheKey)
	}
	if scanCache.Get(scanCacheKey) {
		return nil
	}
	if err := ctrl.catalog.Scan(ctrl.pattern); err != nil {
		return err
	}
	scanCache.Set(scanCacheKey, true)
	return nil
}

func wantsRefresh(c *gin.Context) bool {
	v := c.Query("refresh-now")
	return strings.EqualFold(v, "1") || strings.EqualFold(v, "true")
}

// HandleImages lists discovered screenshots, optionally filtered to one
// application, sorted by filename.
// GET /api/self/v1/images?app=<id|all>&refresh-now=1
func (ctrl *CatalogController) HandleImages(c *gin.Context) {
	if err := ctrl.ensureScanned(wantsRefresh(c)); err != nil {
		c.JSON(http.StatusInternalServerError, tool.FastReturnError("Failed to scan screenshots: "+err.Error()))
		return
	}

	filter := types.FilterAll()
	if app := strings.TrimSpace(c.Query("app")); app != "" && !strings.EqualFold(app, "all") {
		filter = types.FilterApp(app)
	}

	images := ctrl.catalog.ImagesFor(filter)
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(types.ImageListResponse{
		Images: images,
		Count:  len(images),
	}))
}

// HandleApps lists the discovered applications sorted by display label.
// GET /api/self/v1/apps
func (ctrl *CatalogController) HandleApps(c *gin.Context) {
	if err := ctrl.ensureScanned(wantsRefresh(c)); err != nil {
		c.JSON(http.StatusInternalServerError, tool.FastReturnError("Failed to scan screenshots: "+err.Error()))
		return
	}

	apps := ctrl.catalog.Apps()
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(types.AppListResponse{
		Apps:  apps,
		Count: len(apps),
	}))
}

// HandleAppTitle resolves one application id to its record.
// GET /api/self/v1/app-title?appid=570
func (ctrl *CatalogController) HandleAppTitle(c *gin.Context) {
	appID := strings.TrimSpace(c.Query("appid"))
	if appID == "" {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Missing required parameter: appid"))
		return
	}
	app, ok := ctrl.catalog.App(appID)
	if !ok {
		c.JSON(http.StatusNotFound, tool.FastReturnError("Application not found"))
		return
	}
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(app))
}

// HandleRescan forces a wholesale catalog rebuild.
// GET /api/self/v1/rescan
func (ctrl *CatalogController) HandleRescan(c *gin.Context) {
	if err := ctrl.ensureScanned(true); err != nil {
		c.JSON(http.StatusInternalServerError, tool.FastReturnError("Failed to scan screenshots: "+err.Error()))
		return
	}
	images, apps := ctrl.catalog.Counts()
	tool.DefaultLogger.Infof("Catalog rescan: %d images across %d applications", images, apps)
	c.JSON(http.StatusOK, tool.FastReturnSuccess())
}
