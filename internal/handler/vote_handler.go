package handler

import (
	"context"
	"net/http"
	"strconv"

	"bitcast/internal/middleware"
	"bitcast/internal/pkg"
	"bitcast/internal/service"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	svc *service.VoteService
}

func NewVoteHandler(svc *service.VoteService) *VoteHandler {
	return &VoteHandler{svc: svc}
}

func (h *VoteHandler) Upvote(c *gin.Context) {
	h.transition(c, h.svc.Upvote, "Post upvoted")
}

func (h *VoteHandler) Downvote(c *gin.Context) {
	h.transition(c, h.svc.Downvote, "Post downvoted")
}

func (h *VoteHandler) Unvote(c *gin.Context) {
	h.transition(c, h.svc.Unvote, "Post unvoted")
}

func (h *VoteHandler) transition(c *gin.Context, do func(ctx context.Context, userID, postID uint64) error, okMsg string) {
	user, _ := middleware.CurrentUser(c)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		pkg.WriteError(c, pkg.NotFound("Post not found"))
		return
	}

	if err := do(c.Request.Context(), user.ID, postID); err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": okMsg,
		"data":    gin.H{},
	})
}
