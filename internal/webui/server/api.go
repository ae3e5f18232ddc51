package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"orhub/internal/codeblock"
	"orhub/internal/render"
	appver "orhub/internal/version"
)

func errJSON(err error) gin.H { return gin.H{"error": err.Error()} }

var errNoCatalog = errors.New("no catalog loaded")

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func versionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
}

type languageJSON struct {
	Tag   codeblock.Language `json:"tag"`
	Label string             `json:"label"`
}

func languagesHandler(c *gin.Context) {
	out := make([]languageJSON, 0, len(codeblock.SupportedLanguages))
	for _, l := range codeblock.SupportedLanguages {
		out = append(out, languageJSON{Tag: l, Label: l.Label()})
	}
	c.JSON(http.StatusOK, out)
}

// renderResponse is a Document plus an optional language hint for tags
// outside the supported set.
type renderResponse struct {
	render.Document
	Suggestion codeblock.Language `json:"suggestion,omitempty"`
}

func (s *Server) document(o codeblock.Options) (renderResponse, error) {
	sess := render.NewSession(o, s.Registry)
	d, err := render.NewDocument(sess, true)
	if err != nil {
		return renderResponse{}, fmt.Errorf("render html: %w", err)
	}
	resp := renderResponse{Document: d}
	if l := sess.Language(); !l.Supported() {
		if sug, ok := codeblock.SuggestLanguage(string(l)); ok {
			resp.Suggestion = sug
		}
	}
	return resp, nil
}

func (s *Server) renderHandler(c *gin.Context) {
	var o codeblock.Options
	if err := c.ShouldBindJSON(&o); err != nil {
		c.JSON(http.StatusBadRequest, errJSON(err))
		return
	}
	resp, err := s.document(o)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errJSON(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) samplesHandler(c *gin.Context) {
	if s.Catalog == nil {
		c.JSON(http.StatusServiceUnavailable, errJSON(errNoCatalog))
		return
	}
	c.JSON(http.StatusOK, s.Catalog.Categories)
}

func (s *Server) sampleHandler(c *gin.Context) {
	if s.Catalog == nil {
		c.JSON(http.StatusServiceUnavailable, errJSON(errNoCatalog))
		return
	}
	catID, name := c.Param("category"), c.Param("name")
	cat, ok := s.Catalog.Category(catID)
	smp, found := s.Catalog.Sample(catID, name)
	if !ok || !found {
		c.JSON(http.StatusNotFound, errJSON(fmt.Errorf("sample %s/%s not found", catID, name)))
		return
	}
	o := smp.Options(cat)
	if t := c.Query("theme"); t != "" {
		o.Theme = codeblock.Theme(t)
	}
	resp, err := s.document(o)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errJSON(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"sample": smp, "render": resp})
}

func (s *Server) componentsHandler(c *gin.Context) {
	if s.Catalog == nil {
		c.JSON(http.StatusServiceUnavailable, errJSON(errNoCatalog))
		return
	}
	out := make([]gin.H, 0, len(s.Catalog.Components))
	for _, comp := range s.Catalog.Components {
		out = append(out, gin.H{"slug": comp.Slug, "title": comp.Title, "description": comp.Description})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) componentHandler(c *gin.Context) {
	if s.Catalog == nil {
		c.JSON(http.StatusServiceUnavailable, errJSON(errNoCatalog))
		return
	}
	comp, ok := s.Catalog.Component(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, errJSON(fmt.Errorf("component %q not found", c.Param("name"))))
		return
	}
	theme := codeblock.Theme(c.Query("theme"))
	install, usage := comp.InstallOptions(), comp.UsageOptions()
	install.Theme, usage.Theme = theme, theme
	in, err := s.document(install)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errJSON(err))
		return
	}
	us, err := s.document(usage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errJSON(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"component": comp,
		"markdown":  comp.Markdown(),
		"install":   in,
		"usage":     us,
	})
}
