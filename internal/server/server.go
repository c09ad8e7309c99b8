package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"farmacia/internal/config"
	"farmacia/internal/database"
	"farmacia/internal/handlers"
	"farmacia/internal/middlewares"
	"farmacia/internal/repositories"
	"farmacia/internal/routes"
	"farmacia/internal/services"
	"farmacia/internal/views"
)

// Server owns the HTTP server and the connections it was built on.
type Server struct {
	HTTP *http.Server
	db   *gorm.DB
	rdb  *redis.Client
}

// Bootstrap creates the database when needed, opens it and applies the
// schema.
func Bootstrap(ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	if err := database.EnsureDatabaseExists(ctx, cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to ensure database exists: %w", err)
	}

	db, err := database.Open(cfg.DB)
	if err != nil {
		return nil, err
	}

	if err := database.EnsureSchema(ctx, db, cfg.DB); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return db, nil
}

func NewServer(ctx context.Context, cfg config.Config) (*Server, error) {
	db, err := Bootstrap(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.SeedOnStart {
		if err := Seed(ctx, db); err != nil {
			database.Close(db)
			return nil, err
		}
	}

	s := &Server{db: db}

	var cache services.Cache
	if cfg.RedisAddr != "" {
		s.rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := s.rdb.Ping(pingCtx).Err(); err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
		}
		log.Println("Connected to Redis successfully")
		cache = repositories.NewCacheRepository(s.rdb, cfg.CacheTTL)
	} else {
		log.Println("REDIS_ADDR not set, list cache disabled")
	}

	s.HTTP = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      NewRouter(cfg, db, cache),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s, nil
}

// NewRouter wires repositories, services and handlers onto a gin engine.
// A nil cache disables list caching.
func NewRouter(cfg config.Config, db *gorm.DB, cache services.Cache) *gin.Engine {
	especialidadRepo := repositories.NewEspecialidadRepository(db)
	tipoRepo := repositories.NewTipoMedicRepository(db)
	medicamentoRepo := repositories.NewMedicamentoRepository(db)

	especialidadService := services.NewEspecialidadService(especialidadRepo, medicamentoRepo, cache)
	tipoService := services.NewTipoMedicService(tipoRepo, medicamentoRepo, cache)
	medicamentoService := services.NewMedicamentoService(medicamentoRepo, tipoRepo, especialidadRepo, cache)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", middlewares.RequestIDHeader},
		MaxAge:       12 * time.Hour,
	}))
	router.Use(middlewares.RequestID)
	router.SetHTMLTemplate(views.Templates())

	routes.RegisterRoutes(router, routes.Handlers{
		Especialidad: handlers.NewEspecialidadHandler(especialidadService),
		TipoMedic:    handlers.NewTipoMedicHandler(tipoService),
		Medicamento:  handlers.NewMedicamentoHandler(medicamentoService),
		Pages:        handlers.NewPageHandler(especialidadService, tipoService, medicamentoService),
	})
	return router
}

// Seed loads the embedded catalog into db.
func Seed(ctx context.Context, db *gorm.DB) error {
	catalog, err := database.DefaultCatalog()
	if err != nil {
		return fmt.Errorf("failed to load seed catalog: %w", err)
	}
	created, err := database.Seed(ctx, db, catalog)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	log.Printf("Seed completed: %d rows created", created)
	return nil
}

func (s *Server) Close() {
	if s.rdb != nil {
		if err := s.rdb.Close(); err != nil {
			log.Printf("Redis close: %v", err)
		}
	}
	database.Close(s.db)
}
