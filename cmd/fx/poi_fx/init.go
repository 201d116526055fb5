package poi_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/maxeffectus/route-planner-sub001/internal/repositories"
	"github.com/maxeffectus/route-planner-sub001/internal/services"
	"github.com/maxeffectus/route-planner-sub001/pkg/utils"
)

var Module = fx.Provide(
	providePoiRepo, provideRelevanceRepo, provideEmbeddingClient, providePoiService)

func providePoiRepo(db *gorm.DB) repositories.POIRepository {
	return repositories.NewPOIRepository(db)
}

func provideRelevanceRepo(db *gorm.DB) repositories.POIRelevanceRepository {
	return repositories.NewPOIRelevanceRepository(db)
}

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	return utils.NewOpenAIEmbeddingClient(os.Getenv("OPENAI_API_KEY"))
}

func providePoiService(
	poiRepo repositories.POIRepository,
	relevanceRepo repositories.POIRelevanceRepository,
	embedder utils.EmbeddingClientInterface,
) services.POIServiceInterface {
	return services.NewPOIService(poiRepo, relevanceRepo, embedder)
}
