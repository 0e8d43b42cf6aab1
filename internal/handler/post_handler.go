package handler

import (
	"net/http"
	"strconv"
	"time"

	"bitcast/internal/middleware"
	"bitcast/internal/model"
	"bitcast/internal/pkg"
	"bitcast/internal/service"

	"github.com/gin-gonic/gin"
)

const MaxUploadSize = 100 << 20 // 100MB

// 只收视频
var allowedMediaTypes = map[string]bool{
	"video/webm":      true,
	"video/x-msvideo": true,
	"video/mp4":       true,
	"video/quicktime": true,
	"video/x-ms-wmv":  true,
}

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// Create 发帖接口：media 文件 + topic/caption/tiktok 表单字段
func (h *PostHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	file, err := c.FormFile("media")
	if err != nil {
		pkg.WriteError(c, pkg.BadRequest("No file uploaded"))
		return
	}
	if file.Size > MaxUploadSize {
		pkg.WriteError(c, pkg.BadRequest("File too large"))
		return
	}
	contentType := file.Header.Get("Content-Type")
	if !allowedMediaTypes[contentType] {
		pkg.WriteError(c, pkg.BadRequest("Unsupported file type"))
		return
	}

	src, err := file.Open()
	if err != nil {
		pkg.WriteError(c, err)
		return
	}
	defer src.Close()

	id, err := h.svc.Create(c.Request.Context(), user.ID, service.CreatePostInput{
		Topic:       c.PostForm("topic"),
		Caption:     c.PostForm("caption"),
		Tiktok:      c.PostForm("tiktok"),
		FileName:    file.Filename,
		ContentType: contentType,
		Size:        file.Size,
		Body:        src,
	})
	if err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post created",
		"data":    gin.H{"_id": id},
	})
}

// queryInt 解析失败或缺省时回退默认值
func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

// List 列表接口，支持排序/时间窗/话题/作者过滤与分页
func (h *PostHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := queryInt(c, "limit", 20)
	if limit < 0 {
		limit = 20
	}

	column, desc := parseSort(c.Query("sort"), c.Query("order"))
	q := model.FeedQuery{
		Since:  parseSince(time.Now(), c.Query("since")),
		SortBy: column,
		Desc:   desc,
		Offset: (page - 1) * limit,
		Limit:  limit,
	}

	if s := c.Query("topic"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			pkg.WriteError(c, pkg.BadRequest("invalid topic id"))
			return
		}
		q.TopicID = id
	}
	if s := c.Query("author"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			pkg.WriteError(c, pkg.BadRequest("invalid author id"))
			return
		}
		q.AuthorID = id
	}

	var viewerID uint64
	if user, ok := middleware.CurrentUser(c); ok {
		viewerID = user.ID
	}

	docs, meta, err := h.svc.List(c.Request.Context(), q, page, viewerID)
	if err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data": gin.H{
			"docs": docs,
			"meta": meta,
		},
	})
}

// Get 单帖接口
func (h *PostHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		pkg.WriteError(c, pkg.NotFound("Post not found"))
		return
	}

	detail, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data":    detail,
	})
}
