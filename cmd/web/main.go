package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyfire/internal/config"
	"github.com/tomz197/skyfire/internal/store"
)

const (
	defaultHost          = "0.0.0.0"
	defaultPort          = "8080"
	defaultHighScorePath = "/app/data/highscore.json"
)

//go:embed index.html
var htmlPage string

func main() {
	if err := config.Load(); err != nil {
		log.Fatal("Failed to load .env", "err", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           config.GetEnvLevel("LOG_LEVEL", log.InfoLevel),
		ReportTimestamp: true,
		Prefix:          "web",
	})

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	scores := store.NewFile(config.GetEnv("HIGHSCORE_PATH", defaultHighScorePath))

	addr := net.JoinHostPort(host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(sshHost, scores, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("Starting web server", "addr", "http://"+addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("Server error", "err", err)
	}
}

// highScoreResponse is the body of GET /api/highscore.
type highScoreResponse struct {
	HighScore int `json:"high_score"`
}

// newMux serves the landing page and the high score API.
func newMux(sshHost string, scores store.HighScores, logger *log.Logger) *http.ServeMux {
	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", sshHost)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	mux.HandleFunc("GET /api/highscore", func(w http.ResponseWriter, r *http.Request) {
		score, err := scores.Load()
		if err != nil {
			logger.Error("Failed to load high score", "err", err)
			http.Error(w, "high score unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(highScoreResponse{HighScore: score}); err != nil {
			logger.Warn("Failed to write response", "err", err)
		}
	})
	return mux
}
