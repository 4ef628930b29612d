package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"github.com/carotene/sharess-go/api/notifyhub"
	"github.com/carotene/sharess-go/catalog"
	"github.com/carotene/sharess-go/share"
	"github.com/carotene/sharess-go/tool"
	"github.com/carotene/sharess-go/types"
)

const (
	defaultQRSize = 200
	maxQRSize     = 512
)

// ShareController drives the single share slot on behalf of the local UI.
type ShareController struct {
	session *share.Session
	catalog *catalog.Catalog
	hub     *notifyhub.Hub
}

// NewShareController creates the controller. hub may be nil when no notify
// websocket is wired (tests).
func NewShareController(session *share.Session, cat *catalog.Catalog, hub *notifyhub.Hub) *ShareController {
	return &ShareController{session: session, catalog: cat, hub: hub}
}

func (ctrl *ShareController) notify(notification *types.Notification) {
	if ctrl.hub == nil {
		return
	}
	ctrl.hub.Broadcast(notification)
}

// HandleShare starts sharing one catalogued screenshot and returns its URL.
// Any previously active share is superseded without warning.
// POST /api/self/v1/share
func (ctrl *ShareController) HandleShare(c *gin.Context) {
	var request types.ShareRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid request body: "+err.Error()))
		return
	}
	if request.AppID == "" || request.FileName == "" {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("appId and filename are required"))
		return
	}

	image, ok := ctrl.catalog.Lookup(request.AppID, request.FileName)
	if !ok {
		c.JSON(http.StatusNotFound, tool.FastReturnError("Image not found in catalog"))
		return
	}

	url, err := ctrl.session.Start(image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, tool.FastReturnError("Failed to start share: "+err.Error()))
		return
	}

	tool.DefaultLogger.Infof("[Share] Sharing %s at %s", image.FileName, url)
	ctrl.notify(&types.Notification{
		Type:    types.NotifyTypeShareStarted,
		Title:   "Share Started",
		Message: "Image is now downloadable",
		Data: map[string]any{
			"url":      url,
			"filename": image.FileName,
			"appId":    image.AppID,
		},
	})

	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(types.ShareResponse{
		URL:      url,
		FileName: image.FileName,
	}))
}

// HandleStopShare clears the active share. Idempotent: stopping with nothing
// shared still answers ok.
// DELETE /api/self/v1/stop-share
func (ctrl *ShareController) HandleStopShare(c *gin.Context) {
	_, _, wasActive := ctrl.session.Current()
	ctrl.session.Stop()
	if wasActive {
		tool.DefaultLogger.Infof("[Share] Share stopped")
		ctrl.notify(&types.Notification{
			Type:    types.NotifyTypeShareStopped,
			Title:   "Share Stopped",
			Message: "The share link is no longer valid",
		})
	}
	c.JSON(http.StatusOK, tool.FastReturnSuccess())
}

// HandleStatus reports the current share state for the UI.
// GET /api/self/v1/status
func (ctrl *ShareController) HandleStatus(c *gin.Context) {
	image, url, active := ctrl.session.Current()
	status := types.ShareStatus{Active: active}
	if active {
		status.URL = url
		status.FileName = image.FileName
		status.AppID = image.AppID
	}
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(status))
}

// HandleQRCode returns a PNG QR code of the active share URL for the UI to
// display next to the link.
// GET /api/self/v1/create-qr-code?size=200
func (ctrl *ShareController) HandleQRCode(c *gin.Context) {
	url := ctrl.session.URL()
	if url == "" {
		c.JSON(http.StatusNotFound, tool.FastReturnError("No active share"))
		return
	}

	size := parseQRSize(c.Query("size"))
	if size <= 0 {
		size = defaultQRSize
	}
	if size > maxQRSize {
		size = maxQRSize
	}

	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, tool.FastReturnError("Failed to encode QR code: "+err.Error()))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// parseQRSize parses "200" or "200x200" into the pixel dimension.
func parseQRSize(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if idx := strings.Index(s, "x"); idx > 0 {
		s = strings.TrimSpace(s[:idx])
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
