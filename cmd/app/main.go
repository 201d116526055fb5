package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/maxeffectus/route-planner-sub001/cmd/fx/account_fx"
	"github.com/maxeffectus/route-planner-sub001/cmd/fx/controllers_fx"
	"github.com/maxeffectus/route-planner-sub001/cmd/fx/db_fx"
	"github.com/maxeffectus/route-planner-sub001/cmd/fx/itinerary_fx"
	"github.com/maxeffectus/route-planner-sub001/cmd/fx/planner_fx"
	"github.com/maxeffectus/route-planner-sub001/cmd/fx/poi_fx"
	"github.com/maxeffectus/route-planner-sub001/internal/api/controllers"
	"github.com/maxeffectus/route-planner-sub001/internal/infra"
	"github.com/maxeffectus/route-planner-sub001/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		poi_fx.Module,
		planner_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Invoke(Migrate),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) {
	if err := infra.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController,
	poiController *controllers.POIController,
	plannerController *controllers.PlannerController,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, profileController, poiController, plannerController, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController,
	poiController *controllers.POIController,
	plannerController *controllers.PlannerController,
	itineraryController *controllers.ItineraryController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	poisGroup := r.Group("/pois")
	poisGroup.GET("", poiController.ListPOIs)
	poisGroup.POST("", poiController.CreatePOI)

	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware())

	authorized.GET("/profile", profileController.GetProfile)
	authorized.PUT("/profile", profileController.UpsertProfile)

	authorized.POST("/planner/itineraries", plannerController.PlanItinerary)
	authorized.GET("/itineraries", itineraryController.ListItineraries)
	authorized.GET("/itineraries/:id", itineraryController.GetItinerary)
}
