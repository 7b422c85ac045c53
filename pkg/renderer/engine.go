package renderer

import (
	"html/template"
	"strings"

	"echotap.link/models"

	"github.com/gofiber/template/html/v2"
)

// NewEngine loads the .html templates under dir with the helpers the views use.
func NewEngine(dir string) *html.Engine {
	engine := html.New(dir, ".html")
	engine.AddFunc("iconGlyph", models.IconGlyph)
	engine.AddFunc("themeName", models.ThemeColorName)
	engine.AddFunc("photoSrc", PhotoSrc)
	engine.AddFunc("upper", strings.ToUpper)
	return engine
}

// PhotoSrc marks a stored JPEG data URI as safe for an img src. Anything
// else renders as an empty source.
func PhotoSrc(uri string) template.URL {
	if !strings.HasPrefix(uri, "data:image/jpeg;base64,") {
		return ""
	}
	return template.URL(uri)
}
