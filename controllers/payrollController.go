package controllers

import (
	"net/http"

	"retail-api/dtos"
	"retail-api/services"
	"retail-api/utils/common"
	"retail-api/utils/response"

	"github.com/gin-gonic/gin"
)

type PayrollController struct {
	service services.PayrollService
}

func NewPayrollController(service services.PayrollService) *PayrollController {
	return &PayrollController{service: service}
}

func (ctl *PayrollController) List(c *gin.Context) {
	payrolls, err := ctl.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, payrolls)
}

func (ctl *PayrollController) ListByEmployee(c *gin.Context) {
	employeeID, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	payrolls, err := ctl.service.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, payrolls)
}

func (ctl *PayrollController) Get(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	payroll, err := ctl.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, payroll)
}

func (ctl *PayrollController) Create(c *gin.Context) {
	var input dtos.PayrollInput
	if err := bindJSON(c, &input, "payroll creation"); err != nil {
		response.Error(c, err)
		return
	}

	payroll, err := ctl.service.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, payroll)
}

func (ctl *PayrollController) Update(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dtos.PayrollUpdateInput
	if err := bindJSON(c, &input, "payroll update"); err != nil {
		response.Error(c, err)
		return
	}

	payroll, err := ctl.service.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, payroll)
}

func (ctl *PayrollController) Delete(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := ctl.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Payroll record deleted successfully")
}

func (ctl *PayrollController) Summary(c *gin.Context) {
	summary, err := ctl.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
