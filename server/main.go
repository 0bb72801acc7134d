//go:build !js
// +build !js

package main

import (
	_ "embed"
	"flag"
	"log"
	"net/http"
	"os"
	"path/filepath"
)

//go:embed index.html
var indexHTML []byte

// newHandler serves the page, the compiled script at jsPath and its
// source map, and a health check.
func newHandler(jsPath string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path != "/index.html" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})

	mux.HandleFunc("/starfield.js", func(w http.ResponseWriter, r *http.Request) {
		serveScript(w, r, jsPath, "application/javascript")
	})
	mux.HandleFunc("/starfield.js.map", func(w http.ResponseWriter, r *http.Request) {
		serveScript(w, r, jsPath+".map", "application/json")
	})

	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	return mux
}

func serveScript(w http.ResponseWriter, r *http.Request, path, contentType string) {
	if _, err := os.Stat(path); err != nil {
		log.Printf("Script %s unavailable: %v", path, err)
		http.Error(w, "script not built, run: gopherjs build -o "+filepath.Base(path), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFile(w, r, path)
}

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	jsPath := flag.String("js", "starfield.js", "Path to the GopherJS build output")
	flag.Parse()

	log.Printf("Starfield dev server starting on http://localhost%s", *addr)
	log.Printf("Serving script from: %s", *jsPath)

	if err := http.ListenAndServe(*addr, newHandler(*jsPath)); err != nil {
		log.Fatal(err)
	}
}
