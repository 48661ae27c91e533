package api

import (
	"github.com/Polsaker/dongerdong/internal/api/handlers"
	"github.com/Polsaker/dongerdong/internal/api/middleware"
	"github.com/Polsaker/dongerdong/internal/config"
	"github.com/Polsaker/dongerdong/internal/game"
	"github.com/Polsaker/dongerdong/internal/room"
	"github.com/Polsaker/dongerdong/internal/service"
	"github.com/Polsaker/dongerdong/internal/websocket"
	"github.com/Polsaker/dongerdong/pkg/ratelimit"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies are the components built by the server bootstrap.
type Dependencies struct {
	Lobby     *game.Lobby
	Directory *room.Directory
	Hub       *websocket.Hub
	Stats     *service.StatsService
	Limiter   ratelimit.Limiter // nil disables command rate limiting
	Logger    *zap.Logger
}

// SetupRouter wires the HTTP routes
func SetupRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	commandHandler := handlers.NewCommandHandler(deps.Lobby, deps.Logger)
	roomHandler := handlers.NewRoomHandler(deps.Lobby, deps.Directory, deps.Hub)
	leaderboardHandler := handlers.NewLeaderboardHandler(deps.Stats)

	router.GET("/health", handlers.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		rooms := v1.Group("/rooms/:roomId")
		{
			rooms.GET("", roomHandler.GetState)
			rooms.GET("/ws", roomHandler.Watch)
			rooms.GET("/members", roomHandler.ListMembers)
			rooms.POST("/members", roomHandler.PostMembership)

			if deps.Limiter != nil {
				rooms.POST("/commands", middleware.CommandRateLimit(deps.Limiter, cfg.CommandRateCapacity), commandHandler.PostCommand)
			} else {
				rooms.POST("/commands", commandHandler.PostCommand)
			}
		}

		v1.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
		v1.GET("/players/:name", leaderboardHandler.GetPlayer)
	}

	return router
}
