package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxeffectus/route-planner-sub001/internal/models/request_models"
	"github.com/maxeffectus/route-planner-sub001/internal/services"
	"github.com/maxeffectus/route-planner-sub001/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

// PlanItinerary godoc
// @Summary Plan and save a new itinerary
// @Description Selects POIs around the start point for the traveler profile, orders them, and builds a routed itinerary
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.PlanItineraryRequest true "Planning payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /planner/itineraries [post]
func (p *PlannerController) PlanItinerary(c *gin.Context) {
	var req request_models.PlanItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID := c.GetString("user_id")
	itinerary, err := p.plannerService.PlanItinerary(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary planned")
}
