package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"shopping-route-service/internal/adapters/repositories"
	"shopping-route-service/internal/adapters/travel"
	"shopping-route-service/internal/api"
	"shopping-route-service/internal/config"
	"shopping-route-service/internal/domain"
	"shopping-route-service/internal/platform/db"
	"shopping-route-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (Postgres or seed JSON, OSRM or haversine,
// optional Redis travel cache) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	seedPath := config.Get("SEED_PATH", "data/seeds/stores.json")

	home, err := homeFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	directory, prices, err := buildStoreBackend(seedPath)
	if err != nil {
		log.Fatal(err)
	}

	provider, err := buildTravelProvider()
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(directory, prices, provider, home)

	// Timeouts are tuned for cold-cache live routing (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildStoreBackend prefers Postgres when DATABASE_URL is set and falls
// back to serving stores and prices from the seed JSON for local runs.
func buildStoreBackend(seedPath string) (ports.StoreDirectory, ports.PriceSource, error) {
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		log.Printf("DATABASE_URL not set, serving seed data path=%s", seedPath)
		seed, err := repositories.NewSeedDirectory(seedPath)
		if err != nil {
			return nil, nil, err
		}
		return seed, seed, nil
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		return nil, nil, err
	}

	return repositories.NewPostgresStoreDirectory(conn), repositories.NewPostgresPriceSource(conn), nil
}

// buildTravelProvider selects OSRM when configured, haversine otherwise,
// and decorates the result with a Redis cache when REDIS_ADDR is set.
func buildTravelProvider() (ports.TravelTimeProvider, error) {
	var provider ports.TravelTimeProvider

	if osrmURL := strings.TrimSpace(os.Getenv("OSRM_BASE_URL")); osrmURL != "" {
		osrm, err := travel.NewOSRMProvider(osrmURL)
		if err != nil {
			return nil, err
		}
		provider = osrm
	} else {
		speed, err := strconv.ParseFloat(config.Get("AVERAGE_SPEED_KMH", "40"), 64)
		if err != nil {
			return nil, err
		}
		haversine, err := travel.NewHaversineProvider(speed)
		if err != nil {
			return nil, err
		}
		provider = haversine
	}

	redisAddr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if redisAddr == "" {
		return provider, nil
	}

	ttl, err := time.ParseDuration(config.Get("TRAVEL_CACHE_TTL", "24h"))
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	log.Printf("travel cache enabled addr=%s ttl=%s", redisAddr, ttl)
	return travel.NewRedisTravelCache(client, provider, ttl), nil
}

func homeFromEnv() (domain.Coordinate, error) {
	lat, err := strconv.ParseFloat(config.Get("HOME_LAT", "37.7749"), 64)
	if err != nil {
		return domain.Coordinate{}, err
	}
	lon, err := strconv.ParseFloat(config.Get("HOME_LON", "-122.4194"), 64)
	if err != nil {
		return domain.Coordinate{}, err
	}

	home := domain.Coordinate{Lat: lat, Lon: lon}
	if err := home.Validate(); err != nil {
		return domain.Coordinate{}, err
	}

	return home, nil
}
