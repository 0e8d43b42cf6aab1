package model

import "time"

const MediaSourceUpload = "UPLOAD"

// Post 计数字段为冗余值，只允许通过增量更新维护
type Post struct {
	ID          uint64    `gorm:"primaryKey"`
	TopicID     uint64    `gorm:"not null;index"`
	AuthorID    uint64    `gorm:"not null;index"`
	Caption     string    `gorm:"type:text"`
	MediaURL    string    `gorm:"size:512;not null"`
	Tiktok      string    `gorm:"size:512"` // 源站外链，已补全 scheme
	MediaSource string    `gorm:"size:16;not null"`
	Upvotes     int64     `gorm:"not null;default:0"`
	Downvotes   int64     `gorm:"not null;default:0"`
	Shares      int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}
