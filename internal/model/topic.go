package model

import "time"

// Topic 首次发帖时自动创建，Posts 为引用该话题的帖子数
type Topic struct {
	ID        uint64 `gorm:"primaryKey"`
	Title     string `gorm:"uniqueIndex;size:128;not null"`
	Posts     int64  `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
