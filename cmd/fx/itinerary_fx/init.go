package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/maxeffectus/route-planner-sub001/internal/repositories"
	"github.com/maxeffectus/route-planner-sub001/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	profileRepo repositories.ProfileRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, profileRepo)
}
