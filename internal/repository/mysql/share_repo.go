package mysql

import (
	"context"
	"errors"

	"bitcast/internal/model"

	"gorm.io/gorm"
)

type ShareRepository struct {
	DB *gorm.DB
}

// Track (post, sharer, medium) 幂等 upsert，点击数+1，同事务内维护帖子的分享计数
func (r *ShareRepository) Track(ctx context.Context, postID, sharerID uint64, medium string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var share model.Share
		err := tx.Where("post_id = ? AND sharer_id = ? AND medium = ?", postID, sharerID, medium).
			First(&share).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&model.Share{
				PostID:   postID,
				SharerID: sharerID,
				Medium:   medium,
				Clicks:   1,
			}).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&model.Share{}).
				Where("id = ?", share.ID).
				UpdateColumn("clicks", gorm.Expr("clicks + 1")).Error; err != nil {
				return err
			}
		}

		// 按分享数排序读的是 posts.shares，这里保持同步
		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			UpdateColumn("shares", gorm.Expr("shares + 1")).Error
	})
}
