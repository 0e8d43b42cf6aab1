package model

import "time"

const (
	VoteUpvote   = "UPVOTE"
	VoteDownvote = "DOWNVOTE"
)

// Vote 每个 (user, post) 至多一条记录，是投票状态的唯一事实来源
type Vote struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_post"`
	PostID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_post"`
	Type      string `gorm:"size:16;not null"` // UPVOTE / DOWNVOTE
	CreatedAt time.Time
	UpdatedAt time.Time
}
