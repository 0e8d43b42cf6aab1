package service

import (
	"context"

	"bitcast/internal/pkg"
)

// VoteService 状态机本体在仓储层事务里，这里只做入参校验
type VoteService struct {
	votes VoteStore
}

func NewVoteService(votes VoteStore) *VoteService {
	return &VoteService{votes: votes}
}

func (s *VoteService) Upvote(ctx context.Context, userID, postID uint64) error {
	if userID == 0 || postID == 0 {
		return pkg.NotFound("Post not found")
	}
	return s.votes.Upvote(ctx, userID, postID)
}

func (s *VoteService) Downvote(ctx context.Context, userID, postID uint64) error {
	if userID == 0 || postID == 0 {
		return pkg.NotFound("Post not found")
	}
	return s.votes.Downvote(ctx, userID, postID)
}

func (s *VoteService) Unvote(ctx context.Context, userID, postID uint64) error {
	if userID == 0 || postID == 0 {
		return pkg.NotFound("Post not found")
	}
	return s.votes.Unvote(ctx, userID, postID)
}
