package model

import "time"

// FeedQuery 列表查询条件；SortBy 只会是 created_at / upvotes / shares 之一
type FeedQuery struct {
	TopicID  uint64
	AuthorID uint64
	Since    time.Time
	SortBy   string
	Desc     bool
	Offset   int
	Limit    int
}

type UserSummary struct {
	ID      uint64 `json:"_id"`
	Address string `json:"address"`
}

type TopicSummary struct {
	ID    uint64 `json:"_id"`
	Title string `json:"title"`
}

// FeedPost 列表项，已联出作者与话题摘要；Upvoted/Downvoted 仅登录用户可见
type FeedPost struct {
	ID          uint64       `json:"_id"`
	Upvotes     int64        `json:"upvotes"`
	Downvotes   int64        `json:"downvotes"`
	Shares      int64        `json:"shares"`
	Caption     string       `json:"caption"`
	MediaURL    string       `json:"media_url"`
	Tiktok      string       `json:"tiktok"`
	MediaSource string       `json:"media_source"`
	CreatedAt   time.Time    `json:"created_at"`
	Author      UserSummary  `json:"author"`
	Topic       TopicSummary `json:"topic"`
	Upvoted     bool         `json:"upvoted,omitempty"`
	Downvoted   bool         `json:"downvoted,omitempty"`
}

type FeedMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"total_count"`
	TotalPages int64 `json:"total_pages"`
}

// PostDetail 单帖视图，话题引用展开为摘要，media_source 不下发
type PostDetail struct {
	ID        uint64       `json:"_id"`
	Topic     TopicSummary `json:"topic_id"`
	AuthorID  uint64       `json:"author_id"`
	Caption   string       `json:"caption"`
	MediaURL  string       `json:"media_url"`
	Tiktok    string       `json:"tiktok"`
	Upvotes   int64        `json:"upvotes"`
	Downvotes int64        `json:"downvotes"`
	Shares    int64        `json:"shares"`
	CreatedAt time.Time    `json:"created_at"`
}
