package server

import (
	"log/slog"
	"net/http"

	"starseed-server/internal/galaxy"
	galaxyHandlers "starseed-server/internal/galaxy/handlers"
	"starseed-server/internal/middleware"
	serverHandlers "starseed-server/internal/server/handlers"
	"starseed-server/internal/shared/config"
	"starseed-server/internal/shared/database"
	"starseed-server/internal/shared/redis"
	"starseed-server/internal/universe"
	universeHandlers "starseed-server/internal/universe/handlers"
)

type Routes struct {
	cfg             *config.Config
	db              *database.DB
	redis           *redis.Client
	catalog         galaxy.Catalog
	galaxyService   *galaxy.Service
	universeService *universe.Service
	logger          *slog.Logger
}

// NewRoutes wires the HTTP handlers. db and redisClient are nil when the
// memory catalog and in-process rate limiting are used.
func NewRoutes(cfg *config.Config, db *database.DB, redisClient *redis.Client, catalog galaxy.Catalog, galaxyService *galaxy.Service, universeService *universe.Service, logger *slog.Logger) *Routes {
	return &Routes{
		cfg:             cfg,
		db:              db,
		redis:           redisClient,
		catalog:         catalog,
		galaxyService:   galaxyService,
		universeService: universeService,
		logger:          logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	var dbPinger, redisPinger serverHandlers.Pinger
	if r.db != nil {
		dbPinger = r.db
	}
	if r.redis != nil {
		redisPinger = r.redis
	}

	healthHandler := serverHandlers.NewHealthHandler(r.catalog.Backend(), dbPinger, redisPinger)
	galaxyHandler := galaxyHandlers.NewGalaxyHandler(r.galaxyService, r.cfg.DefaultGalaxy())
	streamHandler := galaxyHandlers.NewStreamHandler(r.galaxyService, r.cfg.Generation.DefaultGalaxyName, r.cfg.Frontend.URL)
	universeHandler := universeHandlers.NewUniverseHandler(r.universeService, r.logger)

	// Public endpoints
	mux.Handle("GET /api/server/health", healthHandler)
	mux.HandleFunc("GET /nearby_stars/{x}/{y}", galaxyHandler.NearbyStars)
	mux.HandleFunc("GET /api/galaxies", galaxyHandler.List)
	mux.HandleFunc("GET /api/galaxies/{name}/nearby_stars/{x}/{y}", universeHandler.Explore)
	mux.HandleFunc("GET /api/stars/{seed}/planets", universeHandler.StarPlanets)
	mux.HandleFunc("GET /api/bodies/{kind}/{seed}", universeHandler.Body)
	mux.Handle("GET /ws/nearby_stars", streamHandler)

	// Admin-only endpoints (bearer token + admin role)
	mux.Handle("POST /api/galaxies", middleware.RequireAdmin(r.cfg.Auth.JWTSecret, http.HandlerFunc(galaxyHandler.Register)))

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health", "/nearby_stars/{x}/{y}", "/api/galaxies", "/api/galaxies/{name}/nearby_stars/{x}/{y}", "/api/stars/{seed}/planets", "/api/bodies/{kind}/{seed}"},
		"websocket_endpoints", []string{"/ws/nearby_stars"},
		"admin_endpoints", []string{"POST /api/galaxies"},
		"admin_enabled", r.cfg.AdminEnabled(),
	)

	return mux
}

// Handler wraps the routes in the middleware stack, outermost first.
func (r *Routes) Handler(rateLimiter *middleware.RateLimiter) http.Handler {
	return middleware.Chain(r.Setup(),
		middleware.RequestID,
		middleware.Recovery,
		middleware.NewCORS(r.cfg.Frontend).Middleware,
		rateLimiter.Middleware,
	)
}
