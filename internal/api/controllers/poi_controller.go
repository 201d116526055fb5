package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxeffectus/route-planner-sub001/internal/models/request_models"
	"github.com/maxeffectus/route-planner-sub001/internal/services"
	"github.com/maxeffectus/route-planner-sub001/pkg/utils"
)

type POIController struct {
	poiService services.POIServiceInterface
}

func NewPOIController(poiService services.POIServiceInterface) *POIController {
	return &POIController{
		poiService: poiService,
	}
}

// CreatePOI godoc
// @Summary Add a POI to the catalog
// @Tags POIs
// @Accept json
// @Produce json
// @Param request body request_models.CreatePoiRequest true "POI payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /pois [post]
func (p *POIController) CreatePOI(c *gin.Context) {
	var req request_models.CreatePoiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	poi, err := p.poiService.CreatePOI(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, poi, "POI created")
}

// ListPOIs godoc
// @Summary List catalog POIs
// @Tags POIs
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /pois [get]
func (p *POIController) ListPOIs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	pois, err := p.poiService.ListPOIs(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pois, "")
}
