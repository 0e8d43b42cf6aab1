package mysql

import (
	"context"
	"fmt"
	"time"

	"bitcast/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

// CreateWithTopic 话题计数与发帖在同一事务内完成
func (r *PostRepository) CreateWithTopic(ctx context.Context, post *model.Post, topicTitle string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		topic, err := (&TopicRepository{DB: tx}).IncrementOrCreate(topicTitle)
		if err != nil {
			return err
		}
		post.TopicID = topic.ID
		return tx.Create(post).Error
	})
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, id).Error
	return &post, err
}

// Detail 单帖视图，话题引用展开为标题摘要
func (r *PostRepository) Detail(ctx context.Context, id uint64) (*model.PostDetail, error) {
	var post model.Post
	if err := r.DB.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	var topic model.Topic
	if err := r.DB.WithContext(ctx).First(&topic, post.TopicID).Error; err != nil {
		return nil, err
	}

	return &model.PostDetail{
		ID:        post.ID,
		Topic:     model.TopicSummary{ID: topic.ID, Title: topic.Title},
		AuthorID:  post.AuthorID,
		Caption:   post.Caption,
		MediaURL:  post.MediaURL,
		Tiktok:    post.Tiktok,
		Upvotes:   post.Upvotes,
		Downvotes: post.Downvotes,
		Shares:    post.Shares,
		CreatedAt: post.CreatedAt,
	}, nil
}

// feedRow 联表查询的扁平结果，Scan 后再组装嵌套视图
type feedRow struct {
	ID            uint64
	Upvotes       int64
	Downvotes     int64
	Shares        int64
	Caption       string
	MediaURL      string
	Tiktok        string
	MediaSource   string
	CreatedAt     time.Time
	AuthorID      uint64
	AuthorAddress string
	TopicID       uint64
	TopicTitle    string
}

// Feed 过滤+排序+分页，并返回同条件下的总数
func (r *PostRepository) Feed(ctx context.Context, q model.FeedQuery) ([]model.FeedPost, int64, error) {
	filter := func(tx *gorm.DB) *gorm.DB {
		tx = tx.Model(&model.Post{})
		if q.TopicID != 0 {
			tx = tx.Where("posts.topic_id = ?", q.TopicID)
		}
		if q.AuthorID != 0 {
			tx = tx.Where("posts.author_id = ?", q.AuthorID)
		}
		if !q.Since.IsZero() {
			tx = tx.Where("posts.created_at >= ?", q.Since)
		}
		return tx
	}

	var total int64
	if err := filter(r.DB.WithContext(ctx)).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if q.Limit <= 0 {
		return []model.FeedPost{}, total, nil
	}

	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}

	var rows []feedRow
	err := filter(r.DB.WithContext(ctx)).
		Select(`posts.id, posts.upvotes, posts.downvotes, posts.shares, posts.caption,
			posts.media_url, posts.tiktok, posts.media_source, posts.created_at,
			users.id AS author_id, users.address AS author_address,
			topics.id AS topic_id, topics.title AS topic_title`).
		Joins("JOIN users ON users.id = posts.author_id").
		Joins("JOIN topics ON topics.id = posts.topic_id").
		Order(fmt.Sprintf("posts.%s %s", q.SortBy, dir)).
		Offset(q.Offset).
		Limit(q.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	docs := make([]model.FeedPost, 0, len(rows))
	for _, x := range rows {
		docs = append(docs, model.FeedPost{
			ID:          x.ID,
			Upvotes:     x.Upvotes,
			Downvotes:   x.Downvotes,
			Shares:      x.Shares,
			Caption:     x.Caption,
			MediaURL:    x.MediaURL,
			Tiktok:      x.Tiktok,
			MediaSource: x.MediaSource,
			CreatedAt:   x.CreatedAt,
			Author:      model.UserSummary{ID: x.AuthorID, Address: x.AuthorAddress},
			Topic:       model.TopicSummary{ID: x.TopicID, Title: x.TopicTitle},
		})
	}
	return docs, total, nil
}
