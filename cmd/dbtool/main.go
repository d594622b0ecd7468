package main

import (
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/normgirm/addisland-locator/internal/adapters/repositories"
	"github.com/normgirm/addisland-locator/internal/platform/db"
	"github.com/normgirm/addisland-locator/internal/services"
)

// dbtool prepares a Postgres deployment: it creates the certificate cache
// schema and verifies that the configured control-point table can fit a
// calibration surface, so a bad table fails here instead of at serve time.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := repositories.InitPostgresSchema(conn); err != nil {
		log.Fatal(err)
	}
	log.Println("certificate_cache schema ready")

	controlPath := os.Getenv("CONTROL_POINTS_PATH")
	if controlPath == "" {
		controlPath = "data/calibration/control_points.json"
	}

	source := repositories.NewFileControlPointSource(controlPath)
	if _, err := services.NewCalibrationSurfaceFromSource(source); err != nil {
		log.Fatal(err)
	}
	log.Printf("control points ok: path=%s", controlPath)
}
