package handler

import (
	"net/http"

	"bitcast/internal/pkg"
	"bitcast/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

// SignInReq 登录请求体：签名的原文、签名和声称的签名人地址
type SignInReq struct {
	Message       string `json:"message"`
	Signature     string `json:"signature"`
	SignerAddress string `json:"signerAddress"`
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// SignIn 签名登录接口
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkg.WriteError(c, pkg.BadRequest("invalid params"))
		return
	}

	address, token, err := h.svc.SignIn(req.Message, req.Signature, req.SignerAddress)
	if err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Signin successful",
		"data": gin.H{
			"address":      address,
			"access_token": token,
		},
	})
}
