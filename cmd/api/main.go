package main

import (
	"log"

	"bitcast/internal/config"
	"bitcast/internal/model"
	"bitcast/internal/pkg"
	"bitcast/internal/repository/mysql"
	"bitcast/internal/router"
	"bitcast/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	// .env 不存在也没关系，线上直接用环境变量
	_ = godotenv.Load()
	cfg := config.Load()

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		log.Fatalf("mysql: %v", err)
	}

	// 自动建表（开发阶段 OK）
	mysql.DB.AutoMigrate(
		&model.User{},
		&model.Topic{},
		&model.Post{},
		&model.Vote{},
		&model.Share{},
	)

	pkg.InitJWT([]byte(cfg.JWTSecret))

	media, err := storage.New(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3Region)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	r := router.InitRouter(mysql.DB, media)

	log.Printf("[server] listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("http: %v", err)
	}
}
