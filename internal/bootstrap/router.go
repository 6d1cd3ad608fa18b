package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/brandcanvas/brand-canvas-backend/internal/api/http"
	"github.com/brandcanvas/brand-canvas-backend/internal/api/http/middleware"
	brandhttp "github.com/brandcanvas/brand-canvas-backend/internal/brand/http"
	"github.com/brandcanvas/brand-canvas-backend/internal/brand/repository"
	"github.com/brandcanvas/brand-canvas-backend/internal/brand/service"
)

type RouterDeps struct {
	ServiceName   string
	Version       string
	DB            *pgxpool.Pool
	Redis         *redis.Client
	GenerateRate  int
	GenerateBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
	}))
	r.Use(middleware.RequestID())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	registry := repository.NewSessionRepository(dep.Redis)
	store := repository.NewDocumentRepository(dep.DB)
	svc := service.NewProjectService(registry, store)

	api := r.Group("/api")
	brandhttp.New(svc).Register(api, middleware.RateLimit(dep.GenerateRate, dep.GenerateBurst))

	return r
}
