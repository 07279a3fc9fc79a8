package controllers

import (
	"net/http"

	"retail-api/dtos"
	"retail-api/services"
	"retail-api/utils/common"
	"retail-api/utils/response"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	service services.InventoryService
}

func NewInventoryController(service services.InventoryService) *InventoryController {
	return &InventoryController{service: service}
}

func (ctl *InventoryController) List(c *gin.Context) {
	products, err := ctl.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (ctl *InventoryController) Get(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	product, err := ctl.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (ctl *InventoryController) Create(c *gin.Context) {
	var input dtos.ProductInput
	if err := bindJSON(c, &input, "product creation"); err != nil {
		response.Error(c, err)
		return
	}

	product, err := ctl.service.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (ctl *InventoryController) Update(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dtos.ProductUpdateInput
	if err := bindJSON(c, &input, "product update"); err != nil {
		response.Error(c, err)
		return
	}

	product, err := ctl.service.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateStock is the narrow stock-only update: {"stock": n} with n >= 0.
func (ctl *InventoryController) UpdateStock(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dtos.StockInput
	if err := bindJSON(c, &input, "stock update"); err != nil {
		response.Error(c, err)
		return
	}

	product, err := ctl.service.UpdateStock(c.Request.Context(), id, *input.Stock)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (ctl *InventoryController) Delete(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := ctl.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Product deleted successfully")
}

func (ctl *InventoryController) Summary(c *gin.Context) {
	summary, err := ctl.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
