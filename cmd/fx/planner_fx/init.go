package planner_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"github.com/maxeffectus/route-planner-sub001/internal/repositories"
	"github.com/maxeffectus/route-planner-sub001/internal/services"
	"github.com/maxeffectus/route-planner-sub001/pkg/utils"
)

var Module = fx.Provide(
	provideAISessionFactory, provideSelector, provideSequencer,
	provideRouteProvider, providePlannerService)

func provideAISessionFactory() utils.AISessionFactory {
	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if provider == "openai" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	factory, err := utils.NewAISessionFactory(provider, apiKey, os.Getenv("AI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to initialize AI session factory: %v", err)
	}
	return factory
}

func provideSelector(sessions utils.AISessionFactory) services.POISelectorInterface {
	return services.NewAIPOISelector(sessions)
}

func provideSequencer() services.WaypointSequencerInterface {
	return services.NewWaypointSequencer()
}

func provideRouteProvider() services.RouteProviderInterface {
	return services.NewGraphHopperClient(
		os.Getenv("GRAPHHOPPER_API_KEY"),
		os.Getenv("GRAPHHOPPER_BASE_URL"))
}

func providePlannerService(
	profileRepo repositories.ProfileRepository,
	itineraryRepo repositories.ItineraryRepository,
	poiService services.POIServiceInterface,
	selector services.POISelectorInterface,
	sequencer services.WaypointSequencerInterface,
	router services.RouteProviderInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(profileRepo, itineraryRepo, poiService, selector, sequencer, router)
}
