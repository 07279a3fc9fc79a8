package controllers

import (
	"net/http"

	"retail-api/dtos"
	"retail-api/services"
	"retail-api/utils/common"
	"retail-api/utils/response"

	"github.com/gin-gonic/gin"
)

type ExpenseController struct {
	service services.ExpenseService
}

func NewExpenseController(service services.ExpenseService) *ExpenseController {
	return &ExpenseController{service: service}
}

func (ctl *ExpenseController) List(c *gin.Context) {
	expenses, err := ctl.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (ctl *ExpenseController) Get(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	expense, err := ctl.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Create attributes the expense to the authenticated user.
func (ctl *ExpenseController) Create(c *gin.Context) {
	var input dtos.ExpenseInput
	if err := bindJSON(c, &input, "expense creation"); err != nil {
		response.Error(c, err)
		return
	}

	expense, err := ctl.service.Create(c.Request.Context(), input, common.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (ctl *ExpenseController) Update(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dtos.ExpenseUpdateInput
	if err := bindJSON(c, &input, "expense update"); err != nil {
		response.Error(c, err)
		return
	}

	expense, err := ctl.service.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (ctl *ExpenseController) Delete(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := ctl.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Expense deleted successfully")
}

func (ctl *ExpenseController) Summary(c *gin.Context) {
	summary, err := ctl.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
