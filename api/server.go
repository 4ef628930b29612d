package api

import (
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/carotene/sharess-go/api/controllers"
	"github.com/carotene/sharess-go/api/middlewares"
	"github.com/carotene/sharess-go/api/notifyhub"
	"github.com/carotene/sharess-go/catalog"
	"github.com/carotene/sharess-go/share"
	"github.com/carotene/sharess-go/tool"
)

// Rate limit for the public token route: generous for retries, hostile to
// token enumeration.
const (
	publicRatePerSecond = rate.Limit(10)
	publicRateBurst     = 20
)

// Server is the ephemeral share server plus the localhost-only control API.
// It binds an OS-assigned port, discovers the reachable address, and hands
// both to the share session before serving; its lifetime matches the process.
type Server struct {
	session *share.Session
	catalog *catalog.Catalog
	hub     *notifyhub.Hub
	pattern string

	mu        sync.RWMutex
	engine    *gin.Engine
	server    *http.Server
	listener  net.Listener
	boundIP   string
	boundPort int
}

// NewServer creates the server. hub may be nil to disable the notify websocket.
func NewServer(session *share.Session, cat *catalog.Catalog, hub *notifyhub.Hub, pattern string) *Server {
	return &Server{
		session: session,
		catalog: cat,
		hub:     hub,
		pattern: pattern,
	}
}

func (s *Server) setupRoutes() *gin.Engine {
	if tool.DefaultLogger.GetLevel() == log.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	downloadCtrl := controllers.NewDownloadController(s.session)
	catalogCtrl := controllers.NewCatalogController(s.catalog, s.pattern)
	shareCtrl := controllers.NewShareController(s.session, s.catalog, s.hub)

	// Control API for the UI on this machine; it never touches the public route.
	self := engine.Group("/api/self/v1", middlewares.OnlyAllowLocal)
	{
		self.GET("/images", catalogCtrl.HandleImages)
		self.GET("/apps", catalogCtrl.HandleApps)
		self.GET("/app-title", catalogCtrl.HandleAppTitle)
		self.GET("/rescan", catalogCtrl.HandleRescan)
		self.POST("/share", shareCtrl.HandleShare)
		self.DELETE("/stop-share", shareCtrl.HandleStopShare)
		self.GET("/status", shareCtrl.HandleStatus)
		self.GET("/create-qr-code", shareCtrl.HandleQRCode)
		if s.hub != nil {
			self.GET("/notify-ws", notifyhub.HandleNotifyWS(s.hub))
		}
	}

	// Public share route: the whole request path minus the leading slash is
	// the candidate token.
	public := engine.Group("/", middlewares.PublicRateLimit(publicRatePerSecond, publicRateBurst))
	public.GET("/:token", downloadCtrl.HandleDownload)

	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "Method not allowed")
	})
	engine.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Not found")
	})

	return engine
}

// Start binds a TCP listener on an OS-chosen ephemeral port on all
// interfaces, records the reachable endpoint on the session, and serves until
// the process exits.
func (s *Server) Start() error {
	engine := s.setupRoutes()

	listener, err := net.Listen("tcp4", ":0")
	if err != nil {
		return fmt.Errorf("failed to bind share server: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port

	ip, err := tool.LocalEgressIPv4()
	if err != nil {
		listener.Close()
		return fmt.Errorf("failed to discover reachable address: %v", err)
	}
	s.session.SetEndpoint(ip, port)

	s.mu.Lock()
	s.engine = engine
	s.listener = listener
	s.server = &http.Server{Handler: engine}
	s.boundIP = ip
	s.boundPort = port
	s.mu.Unlock()

	tool.DefaultLogger.Infof("Share server listening on http://%s:%d", ip, port)
	return s.server.Serve(listener)
}

// Addr returns the discovered (ip, port) binding, valid once Start has bound.
func (s *Server) Addr() (string, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.boundIP, s.boundPort
}
