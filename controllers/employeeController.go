package controllers

import (
	"net/http"

	"retail-api/dtos"
	"retail-api/services"
	"retail-api/utils/common"
	"retail-api/utils/response"

	"github.com/gin-gonic/gin"
)

type EmployeeController struct {
	service services.EmployeeService
}

func NewEmployeeController(service services.EmployeeService) *EmployeeController {
	return &EmployeeController{service: service}
}

func (ctl *EmployeeController) List(c *gin.Context) {
	employees, err := ctl.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (ctl *EmployeeController) Get(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	employee, err := ctl.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (ctl *EmployeeController) Create(c *gin.Context) {
	var input dtos.EmployeeInput
	if err := bindJSON(c, &input, "employee creation"); err != nil {
		response.Error(c, err)
		return
	}

	employee, err := ctl.service.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (ctl *EmployeeController) Update(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dtos.EmployeeUpdateInput
	if err := bindJSON(c, &input, "employee update"); err != nil {
		response.Error(c, err)
		return
	}

	employee, err := ctl.service.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (ctl *EmployeeController) Delete(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := ctl.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Employee deleted successfully")
}
