package server

import (
	"context"
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"orhub/internal/highlight"
	"orhub/internal/showcase"
	"orhub/internal/system"
	webembed "orhub/internal/webui/embed"
)

// Server is the HTTP showcase. A nil Registry gets a shared private one.
type Server struct {
	Addr     string
	Catalog  *showcase.Catalog
	Registry *highlight.Registry
}

// Handler builds the gin engine with API and embedded page routes.
func (s *Server) Handler() http.Handler {
	if s.Registry == nil {
		s.Registry = highlight.NewRegistry()
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	s.mountAPI(r)
	mountEmbeddedUI(r)
	return r
}

// Start serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("webui server listening", "addr", s.Addr)
	return srv.ListenAndServe()
}

// OpenBrowser tries to open a URL in the system browser.
func OpenBrowser(url string) error {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "windows":
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}
	return runCmd(cmd, args...)
}

func (s *Server) mountAPI(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", healthHandler)
	api.GET("/version", versionHandler)
	api.GET("/languages", languagesHandler)
	api.POST("/render", s.renderHandler)

	api.GET("/samples", s.samplesHandler)
	api.GET("/samples/:category/:name", s.sampleHandler)

	api.GET("/components", s.componentsHandler)
	api.GET("/components/:name", s.componentHandler)
}

// mountEmbeddedUI serves the embedded page at all non-/api GET routes with
// index fallback.
func mountEmbeddedUI(r *gin.Engine) {
	dist, err := fs.Sub(webembed.DistFS, "dist")
	if err != nil {
		r.NoRoute(func(c *gin.Context) {
			if isAPIPath(c.Request.URL.Path) {
				c.Status(http.StatusNotFound)
				return
			}
			c.String(http.StatusNotFound, "webui assets not found")
		})
		return
	}
	httpFS := http.FS(dist)
	r.NoRoute(func(c *gin.Context) {
		if isAPIPath(c.Request.URL.Path) {
			c.JSON(http.StatusNotFound, errJSON(errors.New("not found")))
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		p := strings.TrimPrefix(c.Request.URL.Path, "/")
		if p != "" && p != "index.html" {
			if f, err := httpFS.Open(p); err == nil {
				_ = f.Close()
				if ct := mime.TypeByExtension(filepath.Ext(p)); ct != "" {
					c.Header("Content-Type", ct)
				}
				c.FileFromFS(p, httpFS)
				return
			}
		}
		// http.FileServer redirects index.html requests, so the page is
		// written directly.
		b, err := fs.ReadFile(dist, "index.html")
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				c.String(http.StatusNotFound, "index.html not found in embedded dist.")
				return
			}
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", b)
	})
}

func isAPIPath(p string) bool {
	return strings.HasPrefix(p, "/api/") || p == "/api"
}
