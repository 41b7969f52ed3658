package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"
	"trip-itinerary-service/internal/adapters/cache"
	"trip-itinerary-service/internal/adapters/catalog"
	"trip-itinerary-service/internal/adapters/distance"
	"trip-itinerary-service/internal/adapters/solver"
	"trip-itinerary-service/internal/api"
	"trip-itinerary-service/internal/config"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite catalog, planning.domains solver, Redis
// plan cache) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/catalog.json")
	solverURL := config.Get("SOLVER_URL", solver.DefaultBaseURL)
	home := config.Get("HOME_LOCATION", "home")
	redisAddr := config.Get("REDIS_ADDR", "")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed the reference catalog on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// The catalog and distance matrix are static: load once, share everywhere.
	repo := catalog.NewSqliteCatalogRepository(db)
	cat, err := repo.LoadCatalog(ctx)
	if err != nil {
		log.Fatal(err)
	}

	rows, err := distance.LoadRows(ctx, db)
	if err != nil {
		log.Fatal(err)
	}
	provider := distance.NewMatrixProvider(rows)

	var planSolver ports.Solver = solver.NewHTTPSolver(solverURL)
	if redisAddr != "" {
		planCache := cache.NewRedisPlanCache(redisAddr)
		if err := planCache.Ping(ctx); err != nil {
			log.Fatal(err)
		}
		defer planCache.Close()
		planSolver = solver.NewCachingSolver(planSolver, planCache)
		log.Printf("plan cache enabled addr=%s", redisAddr)
	}

	router := api.NewRouter(cat, provider, planSolver, services.DefaultSchedule(), home)

	// Write timeout is sized for a cold call to the external solver.
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

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := catalog.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := catalog.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
