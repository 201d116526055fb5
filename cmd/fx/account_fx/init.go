package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/maxeffectus/route-planner-sub001/internal/repositories"
	"github.com/maxeffectus/route-planner-sub001/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService,
	provideProfileRepo, provideProfileService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(profileRepo repositories.ProfileRepository) services.ProfileServiceInterface {
	return services.NewProfileService(profileRepo)
}
