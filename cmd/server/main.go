package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mannmitra/mannmitra/internal/ai"
	"github.com/mannmitra/mannmitra/internal/ai/openai"
	"github.com/mannmitra/mannmitra/internal/chat"
	"github.com/mannmitra/mannmitra/internal/checkin"
	"github.com/mannmitra/mannmitra/internal/config"
	"github.com/mannmitra/mannmitra/internal/content"
	"github.com/mannmitra/mannmitra/internal/server"
	"github.com/mannmitra/mannmitra/internal/session"
)

const version = "v1.0.0-dev"

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
		portFlag    = flag.String("port", "", "Port to listen on (overrides PORT env var)")
	)
	flag.BoolVar(showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	flag.Parse()

	if *showHelp {
		fmt.Printf(`MannMitra - Youth wellness companion

Usage: %s [options]

Options:
  -h, --help      Show this help message
  -v, --version   Show version information
  --port PORT     Port to listen on (default: 8080 or PORT env var)

Environment Variables:
  PORT                Port to listen on (default: 8080)
  OPENAI_API_KEY      OpenAI API key (optional; enables model-assisted replies)
  OPENAI_BASE_URL     Custom OpenAI-compatible base URL (optional)
  MODEL               Chat model to use (default: gpt-4o-mini)
  AI_TIMEOUT_SECONDS  Timeout for model calls in seconds (default: 6)
  CONTENT_DIR         Directory of JSON content overrides (default: content)
  CHECKIN_DB_PATH     SQLite path for the check-in log (default: data/checkins.db)
  CORS_ORIGINS        Comma-separated allowed origins (default: *)

Examples:
  %s                  Start server with default settings
  %s --port 3000      Start server on port 3000
`, os.Args[0], os.Args[0], os.Args[0])
		return
	}

	if *showVersion {
		fmt.Printf("MannMitra %s\n", version)
		return
	}

	// .env is optional; real env always wins.
	_ = godotenv.Load()

	// zerolog setup (human-friendly console)
	zerolog.TimeFieldFormat = time.RFC3339
	cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(cw)

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	port := *portFlag
	if port == "" {
		port = cfg.Port
	}

	lib, err := content.Load(cfg.ContentDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.ContentDir).Msg("failed to load content")
	}

	store, err := checkin.NewSQLite(cfg.CheckinDBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.CheckinDBPath).Msg("failed to open check-in store")
	}
	defer store.Close()

	// Without a key everything runs on the deterministic fallbacks.
	var provider ai.Provider
	if cfg.OpenAIKey != "" {
		provider = openai.New(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.AITimeout())
		log.Info().Str("model", cfg.Model).Msg("model collaborator enabled")
	} else {
		log.Info().Msg("no OPENAI_API_KEY set, running without model collaborator")
	}

	classifier := chat.NewClassifier(provider, cfg.Model, cfg.AITimeout())
	engine := chat.NewEngine()
	coordinator := chat.NewCoordinator(provider, classifier, engine, lib, cfg.Model, cfg.AITimeout())
	sessions := session.NewManager()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("dur", time.Since(start)).
			Msg("http")
	})

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC()})
	})

	app := server.New(sessions, coordinator, store, lib)
	app.Register(r)

	log.Info().Str("port", port).Msg("listening")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
