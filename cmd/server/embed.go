//go:build embed
// +build embed

package main

import (
	"embed"
	"io"
	"io/fs"
	"log"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

//go:embed web
var webAssets embed.FS

// setupStaticFiles configures the static file serving with embedded frontend
func setupStaticFiles(router *gin.Engine) {
	log.Println("📦 Using embedded frontend assets")

	// Get the sub-filesystem for the web directory
	webFS, err := fs.Sub(webAssets, "web")
	if err != nil {
		log.Fatalf("Failed to get web subdirectory: %v", err)
	}

	// Serve static files from embedded FS
	router.NoRoute(func(c *gin.Context) {
		urlPath := c.Request.URL.Path

		// Clean the path
		cleanPath := path.Clean(urlPath)
		if cleanPath == "/" {
			cleanPath = "index.html"
		} else {
			// Remove leading slash for fs.Open
			cleanPath = cleanPath[1:]
		}

		file, err := webFS.Open(cleanPath)
		if err != nil {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}
		defer file.Close()

		stat, err := file.Stat()
		if err != nil || stat.IsDir() {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}

		content, err := io.ReadAll(file)
		if err != nil {
			c.String(http.StatusInternalServerError, "Error reading file")
			return
		}

		// Determine content type
		contentType := "text/html; charset=utf-8"
		switch path.Ext(cleanPath) {
		case ".js":
			contentType = "application/javascript; charset=utf-8"
		case ".css":
			contentType = "text/css; charset=utf-8"
		case ".json":
			contentType = "application/json; charset=utf-8"
		case ".png":
			contentType = "image/png"
		case ".svg":
			contentType = "image/svg+xml"
		case ".ico":
			contentType = "image/x-icon"
		}
		c.Data(http.StatusOK, contentType, content)
	})
}
