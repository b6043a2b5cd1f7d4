package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"myguide/internal/config"
	"myguide/internal/planner"
	"myguide/pkg/utils"
)

type AdminController struct {
	generator  *planner.Generator
	tuningFile string
}

func NewAdminController(generator *planner.Generator, cfg *config.Config) *AdminController {
	return &AdminController{
		generator:  generator,
		tuningFile: cfg.PlannerTuningFile,
	}
}

// GetPlannerTuning godoc
// @Summary Show the active planner tuning
// @Description Dump the effective planner configuration (defaults merged with PLANNER_TUNING_FILE) as YAML. The output is a valid tuning file.
// @Tags Admin
// @Produce application/x-yaml
// @Success 200 {string} string "planner tuning"
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/planner/tuning [get]
func (a *AdminController) GetPlannerTuning(c *gin.Context) {
	out, err := yaml.Marshal(a.generator.Config())
	if err != nil {
		zap.L().Error("failed to render planner tuning", zap.Error(err))
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	source := a.tuningFile
	if source == "" {
		source = "defaults"
	}
	c.Header("X-Planner-Tuning-Source", source)
	c.Data(http.StatusOK, "application/x-yaml; charset=utf-8", out)
}
