package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/normgirm/addisland-locator/internal/adapters/addisland"
	"github.com/normgirm/addisland-locator/internal/adapters/cache"
	"github.com/normgirm/addisland-locator/internal/adapters/repositories"
	"github.com/normgirm/addisland-locator/internal/api"
	"github.com/normgirm/addisland-locator/internal/domain"
	"github.com/normgirm/addisland-locator/internal/platform/db"
	"github.com/normgirm/addisland-locator/internal/ports"
	"github.com/normgirm/addisland-locator/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, registry client) behind ports, fits
// the calibration surface once, and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := getEnv("DB_PATH", "data/app.db")
	controlPath := getEnv("CONTROL_POINTS_PATH", "data/calibration/control_points.json")
	registryURL := getEnv("REGISTRY_BASE_URL", "https://www.addisland.gov.et")
	port := getEnv("PORT", "8080")

	// Calibration is read-only configuration: fit once, share everywhere.
	surface, err := services.NewCalibrationSurfaceFromSource(
		repositories.NewFileControlPointSource(controlPath),
	)
	if err != nil {
		log.Fatal(err)
	}

	certCache, closeDB, err := openCertificateCache(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	fetcher, err := addisland.NewClient(registryURL)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(fetcher, certCache, surface, defaultReference())

	// Timeouts are tuned for cold-cache lookups (registry scrape latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// defaultReference reads the landmark used for zone resolution when requests
// carry no reference point. Unset or malformed values fall through to the
// fixed default zone.
func defaultReference() *domain.GeoPoint {
	latStr := os.Getenv("DEFAULT_REF_LAT")
	lonStr := os.Getenv("DEFAULT_REF_LON")
	if latStr == "" || lonStr == "" {
		return nil
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lon, errLon := strconv.ParseFloat(lonStr, 64)
	if errLat != nil || errLon != nil {
		log.Printf("ignoring malformed default reference lat=%q lon=%q", latStr, lonStr)
		return nil
	}

	return &domain.GeoPoint{Lat: lat, Lon: lon}
}

// openCertificateCache picks the cache backend: Postgres when DATABASE_URL
// is set (deployed runs, schema managed by dbtool), local SQLite otherwise.
func openCertificateCache(dbPath string) (ports.CertificateCache, func() error, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Println("certificate cache backend=postgres")
		return cache.NewSQLCertificateCache(conn), conn.Close, nil
	}

	conn, err := openSqlite(dbPath)
	if err != nil {
		return nil, nil, err
	}

	if err := repositories.InitSchema(conn); err != nil {
		conn.Close()
		return nil, nil, err
	}

	log.Printf("certificate cache backend=sqlite path=%s", dbPath)
	return cache.NewSqliteCertificateCache(conn), conn.Close, nil
}

func openSqlite(dbPath string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return conn, nil
}
