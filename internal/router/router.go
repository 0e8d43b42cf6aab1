package router

import (
	"bitcast/internal/handler"
	"bitcast/internal/middleware"
	"bitcast/internal/repository/mysql"
	"bitcast/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB, media service.MediaStorage) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://bitcast-client.vercel.app",
			"https://bitcast-backend.onrender.com",
			"http://localhost:5173",
			"http://localhost:6900",
		},
		AllowMethods:     []string{"GET", "PUT", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	users := &mysql.UserRepository{DB: db}
	posts := &mysql.PostRepository{DB: db}
	votes := &mysql.VoteRepository{DB: db}
	shares := &mysql.ShareRepository{DB: db}

	auth := handler.NewAuthHandler(service.NewAuthService(users))
	post := handler.NewPostHandler(service.NewPostService(posts, votes, media))
	vote := handler.NewVoteHandler(service.NewVoteService(votes))
	share := handler.NewShareHandler(service.NewShareService(shares, users, posts))

	r.POST("/auth", auth.SignIn)
	r.Any("/ping", middleware.Auth(users), handler.Ping)

	postGroup := r.Group("/post")
	{
		postGroup.POST("", middleware.Auth(users), post.Create)
		postGroup.GET("", middleware.PartialAuth(users), post.List)
		postGroup.GET("/:id", middleware.PartialAuth(users), post.Get)
		postGroup.PATCH("/:id/upvote", middleware.Auth(users), vote.Upvote)
		postGroup.PATCH("/:id/downvote", middleware.Auth(users), vote.Downvote)
		postGroup.PATCH("/:id/unvote", middleware.Auth(users), vote.Unvote)
	}

	r.POST("/share", middleware.Auth(users), share.Track)

	return r
}
