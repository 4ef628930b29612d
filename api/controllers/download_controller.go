package controllers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/carotene/sharess-go/share"
	"github.com/carotene/sharess-go/tool"
)

// DownloadController serves the single public route of the share server.
type DownloadController struct {
	session *share.Session
}

// NewDownloadController creates the controller for the public token route.
func NewDownloadController(session *share.Session) *DownloadController {
	return &DownloadController{session: session}
}

// HandleDownload streams the shared file when the path token matches the
// active share, else answers 404. The file vanishing after the catalog scan
// fails this one request only.
// GET /:token
func (ctrl *DownloadController) HandleDownload(c *gin.Context) {
	token := c.Param("token")
	image, ok := ctrl.session.Resolve(token)
	if !ok {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	file, err := os.Open(image.FilePath)
	if err != nil {
		tool.DefaultLogger.Errorf("[Download] Cannot open shared file %s: %v", image.FilePath, err)
		c.String(http.StatusInternalServerError, "Failed to read file")
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		tool.DefaultLogger.Errorf("[Download] Cannot stat shared file %s: %v", image.FilePath, err)
		c.String(http.StatusInternalServerError, "Failed to read file")
		return
	}

	tool.DefaultLogger.Infof("[Download] Serving %s (%d bytes) to %s", image.FileName, info.Size(), c.ClientIP())
	c.DataFromReader(http.StatusOK, info.Size(), "application/force-download", file, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", image.FileName),
	})
}
