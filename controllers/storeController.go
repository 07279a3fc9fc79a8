package controllers

import (
	"net/http"

	"retail-api/dtos"
	"retail-api/services"
	"retail-api/utils/common"
	"retail-api/utils/response"

	"github.com/gin-gonic/gin"
)

type StoreController struct {
	service services.StoreService
}

func NewStoreController(service services.StoreService) *StoreController {
	return &StoreController{service: service}
}

func (ctl *StoreController) List(c *gin.Context) {
	stores, err := ctl.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

func (ctl *StoreController) Get(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	store, err := ctl.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (ctl *StoreController) Create(c *gin.Context) {
	var input dtos.StoreInput
	if err := bindJSON(c, &input, "store creation"); err != nil {
		response.Error(c, err)
		return
	}

	store, err := ctl.service.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, store)
}

func (ctl *StoreController) Update(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dtos.StoreUpdateInput
	if err := bindJSON(c, &input, "store update"); err != nil {
		response.Error(c, err)
		return
	}

	store, err := ctl.service.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (ctl *StoreController) Delete(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := ctl.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Store deleted successfully")
}
