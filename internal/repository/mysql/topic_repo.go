package mysql

import (
	"bitcast/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TopicRepository struct {
	DB *gorm.DB
}

// IncrementOrCreate 按标题计数+1，不存在则创建；唯一索引保证并发下只有一行
func (r *TopicRepository) IncrementOrCreate(title string) (*model.Topic, error) {
	topic := model.Topic{Title: title, Posts: 1}
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "title"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"posts": gorm.Expr("posts + 1")}),
	}).Create(&topic).Error
	if err != nil {
		return nil, err
	}

	// MySQL 的 upsert 不回填已存在行的主键，读一次
	err = r.DB.Where("title = ?", title).First(&topic).Error
	return &topic, err
}

func (r *TopicRepository) FindByID(id uint64) (*model.Topic, error) {
	var topic model.Topic
	err := r.DB.First(&topic, id).Error
	return &topic, err
}
