package service

import (
	"context"
	"errors"

	"bitcast/internal/model"
	"bitcast/internal/pkg"

	"gorm.io/gorm"
)

type ShareStore interface {
	Track(ctx context.Context, postID, sharerID uint64, medium string) error
}

type ShareService struct {
	shares ShareStore
	users  UserStore
	posts  PostStore
}

func NewShareService(shares ShareStore, users UserStore, posts PostStore) *ShareService {
	return &ShareService{shares: shares, users: users, posts: posts}
}

// Track 记录一次分享点击；分享人或帖子不存在时显式报 404
func (s *ShareService) Track(ctx context.Context, medium string, sharerID, postID uint64) error {
	if _, err := s.users.FindByID(sharerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("User not found")
		}
		return err
	}
	if _, err := s.posts.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("Post not found")
		}
		return err
	}

	return s.shares.Track(ctx, postID, sharerID, model.NormalizeMedium(medium))
}
