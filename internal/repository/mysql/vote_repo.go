package mysql

import (
	"context"
	"errors"
	"fmt"

	"bitcast/internal/model"
	"bitcast/internal/pkg"

	"gorm.io/gorm"
)

type VoteRepository struct {
	DB *gorm.DB
}

func counterColumn(voteType string) string {
	if voteType == model.VoteUpvote {
		return "upvotes"
	}
	return "downvotes"
}

// Upvote NONE→UPVOTED 或 DOWNVOTED→UPVOTED；重复点赞报错
func (r *VoteRepository) Upvote(ctx context.Context, userID, postID uint64) error {
	return r.cast(ctx, userID, postID, model.VoteUpvote, "You've already upvoted this post")
}

// Downvote 与 Upvote 对称
func (r *VoteRepository) Downvote(ctx context.Context, userID, postID uint64) error {
	return r.cast(ctx, userID, postID, model.VoteDownvote, "You've already downvoted this post")
}

// cast 整个迁移放在一个事务里，消除查改之间的并发窗口
func (r *VoteRepository) cast(ctx context.Context, userID, postID uint64, voteType, repeatMsg string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post model.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkg.NotFound("Post not found")
			}
			return err
		}

		var vote model.Vote
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&vote).Error
		switch {
		case err == nil && vote.Type == voteType:
			return pkg.BadRequest(repeatMsg)
		case err == nil:
			// 反向票先撤销
			if err := tx.Delete(&model.Vote{}, vote.ID).Error; err != nil {
				return err
			}
			col := counterColumn(vote.Type)
			if err := tx.Model(&model.Post{}).
				Where("id = ?", postID).
				UpdateColumn(col, gorm.Expr(fmt.Sprintf("CASE WHEN %s > 0 THEN %s - 1 ELSE 0 END", col, col))).
				Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		if err := insertVote(tx, userID, postID, voteType, repeatMsg); err != nil {
			return err
		}
		col := counterColumn(voteType)
		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			UpdateColumn(col, gorm.Expr(col + " + 1")).Error
	})
}

// insertVote 并发请求同时通过前置检查时由唯一索引兜底，输家按重复投票处理
func insertVote(tx *gorm.DB, userID, postID uint64, voteType, repeatMsg string) error {
	err := tx.Create(&model.Vote{UserID: userID, PostID: postID, Type: voteType}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return pkg.BadRequest(repeatMsg)
	}
	return err
}

// Unvote UPVOTED|DOWNVOTED→NONE；无票可撤报错
func (r *VoteRepository) Unvote(ctx context.Context, userID, postID uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post model.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkg.NotFound("Post not found")
			}
			return err
		}

		var vote model.Vote
		if err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&vote).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkg.BadRequest("You've already unvoted this post")
			}
			return err
		}
		if err := tx.Delete(&model.Vote{}, vote.ID).Error; err != nil {
			return err
		}

		// 计数防负，对账兜底
		col := counterColumn(vote.Type)
		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			UpdateColumn(col, gorm.Expr(fmt.Sprintf("CASE WHEN %s > 0 THEN %s - 1 ELSE 0 END", col, col))).
			Error
	})
}

// ListByUserAndPosts 取某用户在一页帖子上的全部投票记录
func (r *VoteRepository) ListByUserAndPosts(ctx context.Context, userID uint64, postIDs []uint64) ([]model.Vote, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var votes []model.Vote
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Find(&votes).Error
	return votes, err
}
