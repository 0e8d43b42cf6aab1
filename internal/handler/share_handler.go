package handler

import (
	"net/http"

	"bitcast/internal/pkg"
	"bitcast/internal/service"

	"github.com/gin-gonic/gin"
)

type ShareHandler struct {
	svc *service.ShareService
}

// ShareReq 字段名刻意压短，帖子加载时每次都会上报
type ShareReq struct {
	Medium string `json:"m"`
	Sharer uint64 `json:"s"`
	Post   uint64 `json:"p"`
}

func NewShareHandler(svc *service.ShareService) *ShareHandler {
	return &ShareHandler{svc: svc}
}

// Track 分享点击上报接口
func (h *ShareHandler) Track(c *gin.Context) {
	var req ShareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkg.WriteError(c, pkg.BadRequest("invalid params"))
		return
	}

	if err := h.svc.Track(c.Request.Context(), req.Medium, req.Sharer, req.Post); err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data":    gin.H{},
	})
}
