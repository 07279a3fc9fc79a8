package controllers

import (
	"net/http"

	"retail-api/services"
	"retail-api/utils/response"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	service services.DashboardService
}

func NewDashboardController(service services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

func (ctl *DashboardController) GetDashboard(c *gin.Context) {
	summary, err := ctl.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
