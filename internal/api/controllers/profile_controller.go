package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxeffectus/route-planner-sub001/internal/models/request_models"
	"github.com/maxeffectus/route-planner-sub001/internal/services"
	"github.com/maxeffectus/route-planner-sub001/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// UpsertProfile godoc
// @Summary Create or replace the traveler profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body request_models.UpsertProfileRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /profile [put]
func (p *ProfileController) UpsertProfile(c *gin.Context) {
	var req request_models.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID := c.GetString("user_id")
	if err := p.profileService.UpsertProfile(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile saved")
}

// GetProfile godoc
// @Summary Get the traveler profile
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /profile [get]
func (p *ProfileController) GetProfile(c *gin.Context) {
	accountID := c.GetString("user_id")

	profile, err := p.profileService.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "")
}
