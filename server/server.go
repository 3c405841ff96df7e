package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"starwars-api/confs"
	"starwars-api/db"
	httpHandler "starwars-api/handlers/http"
	"starwars-api/metrics"
	"starwars-api/repositories"
	"starwars-api/usecases"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	app     *gin.Engine
	db      db.Database
	cfg     *confs.Config
	log     *zap.Logger
	metrics *metrics.Metrics
}

func NewServer(database db.Database, cfg *confs.Config, log *zap.Logger) *Server {
	s := &Server{
		app:     gin.New(),
		db:      database,
		cfg:     cfg,
		log:     log,
		metrics: metrics.New(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Router returns the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.app
}

func (s *Server) setupMiddleware() {
	s.app.HandleMethodNotAllowed = true
	// both slash forms are registered explicitly and served without a redirect
	s.app.RedirectTrailingSlash = false

	s.app.Use(requestID())
	s.app.Use(ginzap.GinzapWithConfig(s.log, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		Context: func(c *gin.Context) []zapcore.Field {
			return []zapcore.Field{zap.String("request_id", c.GetString(requestIDKey))}
		},
	}))
	s.app.Use(ginzap.RecoveryWithZap(s.log, true))
	s.app.Use(s.metrics.Middleware())

	config := cors.DefaultConfig()
	if len(s.cfg.CORSOrigins) == 0 || s.cfg.CORSOrigins[0] == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = s.cfg.CORSOrigins
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader}
	config.ExposeHeaders = []string{requestIDHeader}
	s.app.Use(cors.New(config))
}

func (s *Server) setupRoutes() {
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})
	s.app.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	// Initialize repositories
	userRepo := repositories.NewUserGormRepository(s.db)
	peopleRepo := repositories.NewPeopleGormRepository(s.db)
	planetRepo := repositories.NewPlanetGormRepository(s.db)
	favoriteRepo := repositories.NewFavoriteGormRepository(s.db)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo)
	catalogUseCase := usecases.NewCatalogUseCase(peopleRepo, planetRepo)
	favoriteUseCase := usecases.NewFavoriteUseCase(favoriteRepo)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(userUseCase)
	catalogHandler := httpHandler.NewCatalogHandler(catalogUseCase)
	favoriteHandler := httpHandler.NewFavoriteHandler(favoriteUseCase)

	users := s.app.Group("/user")
	{
		handle(users, http.MethodGet, "", userHandler.GetAllUsers)
		handle(users, http.MethodPost, "", userHandler.CreateUser)
		handle(users, http.MethodPut, "/:id", userHandler.EditUser)

		favorites := users.Group("/favorites/:user_id")
		{
			handle(favorites, http.MethodGet, "", favoriteHandler.GetUserFavorites)
			handle(favorites, http.MethodDelete, "/planet/:planet_id", favoriteHandler.DeleteFavoritePlanet)
			handle(favorites, http.MethodDelete, "/people/:character_id", favoriteHandler.DeleteFavoritePeople)
		}
	}

	people := s.app.Group("/people")
	{
		handle(people, http.MethodGet, "", catalogHandler.GetAllPeople)
		handle(people, http.MethodPost, "", catalogHandler.CreatePeople)
		handle(people, http.MethodGet, "/:id", catalogHandler.GetPeople)
	}

	planets := s.app.Group("/planet")
	{
		handle(planets, http.MethodGet, "", catalogHandler.GetAllPlanets)
		handle(planets, http.MethodPost, "", catalogHandler.CreatePlanet)
		handle(planets, http.MethodGet, "/:id", catalogHandler.GetPlanet)
	}

	favorite := s.app.Group("/favorite")
	{
		handle(favorite, http.MethodPost, "/planet/:planet_id", favoriteHandler.AddFavoritePlanet)
		handle(favorite, http.MethodPost, "/people/:character_id", favoriteHandler.AddFavoritePeople)
	}

	s.app.NoRoute(httpHandler.NotFound)
	s.app.NoMethod(httpHandler.MethodNotAllowed)
}

// handle registers h for path with and without a trailing slash.
func handle(g *gin.RouterGroup, method, path string, h gin.HandlerFunc) {
	g.Handle(method, path, h)
	g.Handle(method, path+"/", h)
}

// Start serves HTTP until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.app,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting API server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
