package controllers

import (
	"net/http"

	"retail-api/dtos"
	"retail-api/services"
	"retail-api/utils/common"
	"retail-api/utils/response"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service services.AuthService
}

func NewAuthController(service services.AuthService) *AuthController {
	return &AuthController{service: service}
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input dtos.RegisterInput
	if err := bindJSON(c, &input, "registration"); err != nil {
		response.Error(c, err)
		return
	}

	result, err := ctl.service.Register(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input dtos.LoginInput
	if err := bindJSON(c, &input, "login"); err != nil {
		response.Error(c, err)
		return
	}

	result, err := ctl.service.Login(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ctl *AuthController) Profile(c *gin.Context) {
	user, err := ctl.service.Profile(c.Request.Context(), *common.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *AuthController) UpdateProfile(c *gin.Context) {
	var input dtos.UpdateProfileInput
	if err := bindJSON(c, &input, "profile update"); err != nil {
		response.Error(c, err)
		return
	}

	user, err := ctl.service.UpdateProfile(c.Request.Context(), *common.GetUserID(c), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *AuthController) ChangePassword(c *gin.Context) {
	var input dtos.ChangePasswordInput
	if err := bindJSON(c, &input, "password change"); err != nil {
		response.Error(c, err)
		return
	}

	if err := ctl.service.ChangePassword(c.Request.Context(), *common.GetUserID(c), input); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Password updated successfully")
}

// Verify only runs behind the auth middleware, so reaching it means the
// token is valid.
func (ctl *AuthController) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, dtos.VerifyResponse{
		Valid: true,
		User: dtos.TokenUser{
			ID:    *common.GetUserID(c),
			Email: common.GetUserEmail(c),
		},
	})
}
