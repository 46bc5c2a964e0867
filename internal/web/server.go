package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"treeviz/internal/model"
	"treeviz/internal/tree"
)

// Config holds the inputs the web handlers re-analyze on each request, so a
// reload in the browser picks up edits to the source files.
type Config struct {
	TreePath  string
	ValidPath string
	Width     float64
	Port      string
}

// StartServer starts the web server on the configured port (default 8080).
func StartServer(cfg Config) error {
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Width == 0 {
		cfg.Width = tree.DefaultWidth
	}

	s := &server{cfg: cfg, log: logrus.StandardLogger()}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/svg", s.handleSVG)
	mux.HandleFunc("/api/tree", s.handleTree)
	mux.HandleFunc("/api/source", s.handleSource)

	fmt.Printf("Starting treeviz web server at http://localhost:%s\n", cfg.Port)
	fmt.Printf("Go to http://localhost:%s in your browser.\n", cfg.Port)

	return http.ListenAndServe(":"+cfg.Port, s.logged(mux))
}

type server struct {
	cfg Config
	log *logrus.Logger
}

func (s *server) logged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Info("request")
		next.ServeHTTP(w, r)
	})
}

func (s *server) analyze() (model.AnalysisResult, error) {
	a := tree.NewAnalyzer()
	a.Width = s.cfg.Width
	return a.AnalyzeFiles(s.cfg.TreePath, s.cfg.ValidPath)
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexHTML, model.Version)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>treeviz</title></head>
<body style="font-family: sans-serif; margin: 2em;">
<h1>Tree Visualization with Valid Paths Highlighted</h1>
<p>treeviz %s &middot; <a href="/api/tree">JSON</a> &middot; <a href="/svg">SVG only</a></p>
<object type="image/svg+xml" data="/svg"></object>
</body>
</html>
`

func (s *server) handleSVG(w http.ResponseWriter, r *http.Request) {
	result, err := s.analyze()
	if err != nil {
		s.log.WithError(err).Error("analysis failed")
		http.Error(w, err.Error(), 500)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	fmt.Fprint(w, RenderSVG(result))
}

func (s *server) handleTree(w http.ResponseWriter, r *http.Request) {
	result, err := s.analyze()
	if err != nil {
		s.log.WithError(err).Error("analysis failed")
		http.Error(w, err.Error(), 500)
		return
	}

	response := struct {
		model.AnalysisResult
		Report  string `json:"Report"`
		Version string `json:"Version"`
	}{
		AnalysisResult: result,
		Report:         tree.GenerateReport(result, false),
		Version:        model.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *server) handleSource(w http.ResponseWriter, r *http.Request) {
	lineStr := r.URL.Query().Get("line")
	if lineStr == "" {
		http.Error(w, "line is required", 400)
		return
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil {
		http.Error(w, "invalid line number", 400)
		return
	}

	context := model.GetSourceContext(s.cfg.TreePath, line)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(context)
}
