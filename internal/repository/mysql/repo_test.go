package mysql

import (
	"path/filepath"
	"testing"

	"bitcast/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// openTestDB 仓储测试用临时库，表结构与线上迁移一致
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Topic{},
		&model.Post{},
		&model.Vote{},
		&model.Share{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, address string) *model.User {
	t.Helper()
	user := model.User{Address: address}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func seedPost(t *testing.T, db *gorm.DB, authorID uint64) *model.Post {
	t.Helper()
	topic := model.Topic{Title: "dance", Posts: 1}
	if err := db.Create(&topic).Error; err != nil {
		t.Fatalf("seed topic: %v", err)
	}
	post := model.Post{
		TopicID:     topic.ID,
		AuthorID:    authorID,
		Caption:     "hi",
		MediaURL:    "https://store.local/media/clip.mp4",
		MediaSource: model.MediaSourceUpload,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return &post
}

func reloadPost(t *testing.T, db *gorm.DB, id uint64) *model.Post {
	t.Helper()
	var post model.Post
	if err := db.First(&post, id).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	return &post
}
