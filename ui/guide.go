package ui

import (
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// handleGuide renders the embedded usage guide from markdown
func (s *Server) handleGuide(c *gin.Context) {
	source, err := fs.ReadFile(s.files, "guide.md")
	if err != nil {
		log.Printf("[API] failed to read guide: %v", err)
		c.String(http.StatusInternalServerError, "guide unavailable")
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	rendered := markdown.ToHTML(source, p, renderer)

	c.HTML(http.StatusOK, "guide.html", gin.H{
		"Content": template.HTML(rendered),
	})
}
