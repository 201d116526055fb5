package controllers_fx

import (
	"go.uber.org/fx"

	"github.com/maxeffectus/route-planner-sub001/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewPOIController),
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewItineraryController))
