// Command bookmeta-server exposes the batch ISBN resolver over HTTP.
//
// The server is deliberately thin: request parsing, CORS, and the JSON
// envelope live here; all resolution logic is in pkg/batch and
// pkg/resolver.
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/booklab-kr/bookmeta/pkg/batch"
	"github.com/booklab-kr/bookmeta/pkg/cache"
	"github.com/booklab-kr/bookmeta/pkg/logging"
	"github.com/booklab-kr/bookmeta/pkg/resolver"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(getEnv("LOG_LEVEL", "info")),
		Pretty: os.Getenv("LOG_PRETTY") == "true",
		Output: os.Stderr,
	})

	// Missing credential is the one fatal, batch-wide configuration
	// error; it is never reported per row.
	certKey := os.Getenv("BOOKMETA_CERT_KEY")
	if certKey == "" {
		logger.Fatal().Msg("BOOKMETA_CERT_KEY is required")
	}

	cfg := resolver.DefaultConfig(certKey, buildStore(logger))
	if base := os.Getenv("UPSTREAM_URL"); base != "" {
		cfg.BaseURL = base
	}

	client, err := resolver.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create resolver")
	}

	service := batch.NewService(client)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/api/v1/resolve", resolveHandler(service))

	addr := ":" + getEnv("PORT", "8080")
	logger.Info().Str("addr", addr).Msg("Starting bookmeta server")

	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}

// buildStore connects Redis when REDIS_URL is set, otherwise falls back
// to the in-process store (single-instance deployments, local dev).
func buildStore(logger zerolog.Logger) cache.Store {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		logger.Warn().Msg("REDIS_URL not set, using in-process cache")
		return cache.NewMemoryStore()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Fatal().Err(err).Str("addr", redisURL).Msg("Failed to connect to Redis")
	}
	logger.Info().Str("addr", redisURL).Msg("Connected to Redis")

	return cache.NewManager(redisClient)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
