package mysql

import "testing"

func TestIncrementOrCreate(t *testing.T) {
	db := openTestDB(t)
	repo := &TopicRepository{DB: db}

	first, err := repo.IncrementOrCreate("dance")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Posts != 1 {
		t.Errorf("posts = %d, want 1", first.Posts)
	}

	// 同名话题复用同一行，计数+1
	second, err := repo.IncrementOrCreate("dance")
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("topic id = %d, want %d", second.ID, first.ID)
	}
	if second.Posts != 2 {
		t.Errorf("posts = %d, want 2", second.Posts)
	}
}
