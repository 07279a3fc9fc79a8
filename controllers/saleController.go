package controllers

import (
	"net/http"

	"retail-api/dtos"
	"retail-api/services"
	"retail-api/utils/common"
	"retail-api/utils/response"

	"github.com/gin-gonic/gin"
)

type SaleController struct {
	service services.SaleService
}

func NewSaleController(service services.SaleService) *SaleController {
	return &SaleController{service: service}
}

func (ctl *SaleController) List(c *gin.Context) {
	sales, err := ctl.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (ctl *SaleController) Get(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	sale, err := ctl.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (ctl *SaleController) Create(c *gin.Context) {
	var input dtos.SaleInput
	if err := bindJSON(c, &input, "sale creation"); err != nil {
		response.Error(c, err)
		return
	}

	sale, err := ctl.service.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}

func (ctl *SaleController) Update(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dtos.SaleUpdateInput
	if err := bindJSON(c, &input, "sale update"); err != nil {
		response.Error(c, err)
		return
	}

	sale, err := ctl.service.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (ctl *SaleController) Delete(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := ctl.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Sale deleted successfully")
}
