package service

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"bitcast/internal/model"
	"bitcast/internal/pkg"

	"gorm.io/gorm"
)

type PostStore interface {
	CreateWithTopic(ctx context.Context, post *model.Post, topicTitle string) error
	Detail(ctx context.Context, id uint64) (*model.PostDetail, error)
	Feed(ctx context.Context, q model.FeedQuery) ([]model.FeedPost, int64, error)
	FindByID(id uint64) (*model.Post, error)
}

type VoteStore interface {
	Upvote(ctx context.Context, userID, postID uint64) error
	Downvote(ctx context.Context, userID, postID uint64) error
	Unvote(ctx context.Context, userID, postID uint64) error
	ListByUserAndPosts(ctx context.Context, userID uint64, postIDs []uint64) ([]model.Vote, error)
}

type MediaStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Remove(ctx context.Context, key string) error
}

type PostService struct {
	posts PostStore
	votes VoteStore
	media MediaStorage
}

func NewPostService(posts PostStore, votes VoteStore, media MediaStorage) *PostService {
	return &PostService{posts: posts, votes: votes, media: media}
}

type CreatePostInput struct {
	Topic       string
	Caption     string
	Tiktok      string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// NormalizeLink 砍掉原有 scheme 并统一补 https 前缀
func NormalizeLink(link string) string {
	if i := strings.Index(link, "//"); i >= 0 {
		link = link[i+2:]
	}
	return "https://" + link
}

// Create 先传对象存储，再落库；落库失败时删掉已上传的对象
func (s *PostService) Create(ctx context.Context, authorID uint64, in CreatePostInput) (uint64, error) {
	mediaURL, err := s.media.Upload(ctx, in.FileName, in.ContentType, in.Body, in.Size)
	if err != nil {
		return 0, err
	}

	post := &model.Post{
		AuthorID:    authorID,
		Caption:     in.Caption,
		MediaURL:    mediaURL,
		Tiktok:      NormalizeLink(in.Tiktok),
		MediaSource: model.MediaSourceUpload,
	}
	if err := s.posts.CreateWithTopic(ctx, post, in.Topic); err != nil {
		if rmErr := s.media.Remove(ctx, in.FileName); rmErr != nil {
			log.Printf("orphaned media %q: %v", in.FileName, rmErr)
		}
		return 0, err
	}
	return post.ID, nil
}

// List 分页列表；viewerID 非零时在每条帖子上标注该用户的投票状态
func (s *PostService) List(ctx context.Context, q model.FeedQuery, page int, viewerID uint64) ([]model.FeedPost, model.FeedMeta, error) {
	docs, total, err := s.posts.Feed(ctx, q)
	if err != nil {
		return nil, model.FeedMeta{}, err
	}

	var totalPages int64
	if q.Limit > 0 {
		totalPages = (total + int64(q.Limit) - 1) / int64(q.Limit)
	}
	meta := model.FeedMeta{
		Page:       page,
		Limit:      q.Limit,
		TotalCount: total,
		TotalPages: totalPages,
	}

	if viewerID != 0 && len(docs) > 0 {
		ids := make([]uint64, len(docs))
		for i, d := range docs {
			ids[i] = d.ID
		}
		votes, err := s.votes.ListByUserAndPosts(ctx, viewerID, ids)
		if err != nil {
			return nil, model.FeedMeta{}, err
		}
		byPost := make(map[uint64]string, len(votes))
		for _, v := range votes {
			byPost[v.PostID] = v.Type
		}
		for i := range docs {
			switch byPost[docs[i].ID] {
			case model.VoteUpvote:
				docs[i].Upvoted = true
			case model.VoteDownvote:
				docs[i].Downvoted = true
			}
		}
	}
	return docs, meta, nil
}

func (s *PostService) Get(ctx context.Context, id uint64) (*model.PostDetail, error) {
	detail, err := s.posts.Detail(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.NotFound("Post not found")
	}
	return detail, err
}
