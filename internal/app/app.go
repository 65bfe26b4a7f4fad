package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"retrofolio/internal/app/server"
	"retrofolio/internal/blog"
	"retrofolio/internal/config"
	"retrofolio/internal/database"
	"retrofolio/internal/geo"
	"retrofolio/internal/guestbook"
	"retrofolio/internal/mail"
	"retrofolio/internal/moderation"
	"retrofolio/internal/profile"
	"retrofolio/internal/stats"
	"retrofolio/internal/support"

	"github.com/redis/go-redis/v9"
)

const defaultBackendPort = 8082

func Run() error {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found. Falling back to system environment variables.")
	}

	log.SetLevel(log.DebugLevel)

	backendPortFlag := flag.Int("backend-port", defaultBackendPort, "Port for API server")
	serveFEFlag := flag.Bool("serve-frontend", true, "Serve the frontend bundle on the API port")
	flag.Parse()

	cfg := config.Load()
	if port := readPort("BACKEND_PORT"); port != 0 {
		cfg.BackendPort = port
	} else {
		cfg.BackendPort = *backendPortFlag
	}

	serveFrontend := *serveFEFlag
	if v := os.Getenv("SERVE_FRONTEND"); strings.EqualFold(v, "false") {
		serveFrontend = false
	}

	ctx := context.Background()

	if _, err := database.SetupDB(cfg.Database); err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if cfg.AdminPassword == "" {
		log.Warn("ADMIN_PASSWORD is not set; admin operations will report a configuration error")
	}

	var moderator guestbook.Moderator
	mod, err := moderation.New(ctx, cfg.Moderation)
	switch {
	case errors.Is(err, moderation.ErrNotConfigured):
		log.Warn("moderation is DISABLED: no classifier API key configured; all submissions will be accepted")
		moderator = moderation.Disabled{}
	case err != nil:
		return fmt.Errorf("failed to set up moderation: %w", err)
	default:
		moderator = mod
	}

	pipeline := guestbook.New(guestbook.DatabaseStore{}, guestbook.DatabaseBlocklist{}, moderator)

	mailer := mail.New(cfg.Mail)
	if !mailer.Configured() {
		log.Warn("contact mail is not configured; the contact form will report a configuration error")
	}

	blogLoader := blog.NewLoader(cfg.BlogDir)
	if err := blogLoader.Load(ctx); err != nil {
		log.Error("failed to load blog content", "error", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = support.GetRedisClient(cfg.RedisURL)
		if err != nil {
			log.Warn("visitor stats disabled", "error", err)
		}
	}
	visitors := stats.NewVisitors(redisClient)
	defer func() {
		if err := support.CloseRedisClient(); err != nil {
			log.Warn("error closing redis client", "error", err)
		}
	}()

	geoResolver := geo.NewResolver(cfg.GeoDBPath)
	defer geoResolver.Close()

	srv := server.New(cfg, pipeline, mailer, blogLoader, profile.Default(), visitors, geoResolver)
	return srv.OpenRoutes(cfg.BackendPort, serveFrontend)
}

func readPort(envKey string) int {
	raw := os.Getenv(envKey)
	if raw == "" {
		return 0
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port == 0 {
		log.Warn("invalid port override", "env", envKey, "value", raw)
		return 0
	}
	return port
}
