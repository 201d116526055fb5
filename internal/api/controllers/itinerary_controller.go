package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxeffectus/route-planner-sub001/internal/services"
	"github.com/maxeffectus/route-planner-sub001/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GetItinerary godoc
// @Summary Get a saved itinerary
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{id} [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	accountID := c.GetString("user_id")
	itineraryID := c.Param("id")

	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), accountID, itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "")
}

// ListItineraries godoc
// @Summary List saved itineraries, newest first
// @Tags Itineraries
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /itineraries [get]
func (i *ItineraryController) ListItineraries(c *gin.Context) {
	accountID := c.GetString("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	summaries, err := i.itineraryService.ListItineraries(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summaries, "")
}
