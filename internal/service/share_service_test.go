package service

import (
	"context"
	"errors"
	"testing"

	"bitcast/internal/model"
	"bitcast/internal/pkg"

	"gorm.io/gorm"
)

type fakeUserStore struct {
	users map[uint64]*model.User
}

func (f *fakeUserStore) Create(user *model.User) error {
	user.ID = uint64(len(f.users) + 1)
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) FindByAddress(address string) (*model.User, error) {
	for _, u := range f.users {
		if u.Address == address {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) FindByID(id uint64) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeShareStore struct {
	postID   uint64
	sharerID uint64
	medium   string
	calls    int
}

func (f *fakeShareStore) Track(ctx context.Context, postID, sharerID uint64, medium string) error {
	f.postID, f.sharerID, f.medium = postID, sharerID, medium
	f.calls++
	return nil
}

func shareFixture() (*ShareService, *fakeShareStore) {
	users := &fakeUserStore{users: map[uint64]*model.User{1: {ID: 1, Address: "0xaa"}}}
	posts := &fakePostStore{byID: map[uint64]*model.Post{10: {ID: 10}}}
	shares := &fakeShareStore{}
	return NewShareService(shares, users, posts), shares
}

func TestTrackShare(t *testing.T) {
	svc, shares := shareFixture()

	if err := svc.Track(context.Background(), "TWITTER", 1, 10); err != nil {
		t.Fatalf("Track: %v", err)
	}
	if shares.medium != model.MediumTwitter {
		t.Errorf("medium = %q, want TWITTER", shares.medium)
	}
	if shares.postID != 10 || shares.sharerID != 1 {
		t.Errorf("recorded (%d, %d), want (10, 1)", shares.postID, shares.sharerID)
	}
}

func TestTrackShareUnknownMedium(t *testing.T) {
	svc, shares := shareFixture()

	if err := svc.Track(context.Background(), "carrier-pigeon", 1, 10); err != nil {
		t.Fatalf("Track: %v", err)
	}
	if shares.medium != model.MediumGeneric {
		t.Errorf("medium = %q, want GENERIC fallback", shares.medium)
	}
}

func TestTrackShareMissingRefs(t *testing.T) {
	svc, shares := shareFixture()

	tests := []struct {
		name     string
		sharerID uint64
		postID   uint64
	}{
		{"unknown sharer", 99, 10},
		{"unknown post", 1, 99},
	}
	for _, tt := range tests {
		err := svc.Track(context.Background(), "TWITTER", tt.sharerID, tt.postID)
		var apiErr *pkg.APIError
		if !errors.As(err, &apiErr) || apiErr.Status != 404 {
			t.Errorf("%s: err = %v, want 404 APIError", tt.name, err)
		}
	}
	if shares.calls != 0 {
		t.Errorf("no share must be recorded for missing refs, got %d calls", shares.calls)
	}
}
