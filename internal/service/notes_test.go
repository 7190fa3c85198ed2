package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"dashboard/internal/repository"
)

func TestIsValidNoteKey(t *testing.T) {
	tests := []struct {
		key   string
		valid bool
	}{
		{"userNote", true},
		{"shopping-list_2", true},
		{"", false},
		{"has space", false},
		{"یادداشت", false},
		{strings.Repeat("a", 65), false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := IsValidNoteKey(tc.key); got != tc.valid {
				t.Errorf("IsValidNoteKey(%q) = %v, want %v", tc.key, got, tc.valid)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"", "..."},
		{"short", "short..."},
		{"exactly fifteen", "exactly fifteen..."},
		{"this note is longer than fifteen", "this note is lo..."},
		{"یادداشت من برای فردا صبح", "یادداشت من برای..."},
	}
	for _, tc := range tests {
		if got := Preview(tc.body); got != tc.want {
			t.Errorf("Preview(%q) = %q, want %q", tc.body, got, tc.want)
		}
	}
}

func TestNoteService_Load(t *testing.T) {
	sugar := zap.NewNop().Sugar()
	updated := time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo := &mockNoteRepo{
			getFunc: func(ctx context.Context, key string) (*repository.Note, error) {
				return &repository.Note{Key: key, Body: "buy bread and milk today", UpdatedAt: updated}, nil
			},
		}
		n, err := NewNoteService(repo, sugar).Load(context.Background(), "userNote")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if n.Preview != "buy bread and m..." {
			t.Errorf("Unexpected preview %q", n.Preview)
		}
		if n.UpdatedAt != "2026-10-17T08:30:00Z" {
			t.Errorf("Unexpected updated_at %q", n.UpdatedAt)
		}
	})

	t.Run("empty note has no preview", func(t *testing.T) {
		repo := &mockNoteRepo{
			getFunc: func(ctx context.Context, key string) (*repository.Note, error) {
				return &repository.Note{Key: key, Body: "", UpdatedAt: updated}, nil
			},
		}
		n, err := NewNoteService(repo, sugar).Load(context.Background(), "userNote")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if n.Preview != "" {
			t.Errorf("Expected empty preview, got %q", n.Preview)
		}
	})

	t.Run("missing", func(t *testing.T) {
		repo := &mockNoteRepo{
			getFunc: func(ctx context.Context, key string) (*repository.Note, error) { return nil, nil },
		}
		_, err := NewNoteService(repo, sugar).Load(context.Background(), "userNote")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("db error", func(t *testing.T) {
		repo := &mockNoteRepo{
			getFunc: func(ctx context.Context, key string) (*repository.Note, error) {
				return nil, errors.New("connection refused")
			},
		}
		_, err := NewNoteService(repo, sugar).Load(context.Background(), "userNote")
		if !errors.Is(err, ErrInternal) {
			t.Errorf("Expected ErrInternal, got %v", err)
		}
	})

	t.Run("invalid key", func(t *testing.T) {
		_, err := NewNoteService(&mockNoteRepo{}, sugar).Load(context.Background(), "../etc")
		if !errors.Is(err, ErrInvalidNoteKey) {
			t.Errorf("Expected ErrInvalidNoteKey, got %v", err)
		}
	})
}

func TestNoteService_Save(t *testing.T) {
	sugar := zap.NewNop().Sugar()

	t.Run("saves", func(t *testing.T) {
		var savedBody string
		repo := &mockNoteRepo{
			saveFunc: func(ctx context.Context, key, body string) (*repository.Note, error) {
				savedBody = body
				return &repository.Note{Key: key, Body: body, UpdatedAt: time.Now()}, nil
			},
		}
		n, err := NewNoteService(repo, sugar).Save(context.Background(), "userNote", "call home")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if savedBody != "call home" || n.Preview != "call home..." {
			t.Errorf("Unexpected result %+v", n)
		}
	})

	t.Run("empty note saves with an ellipsis", func(t *testing.T) {
		repo := &mockNoteRepo{
			saveFunc: func(ctx context.Context, key, body string) (*repository.Note, error) {
				return &repository.Note{Key: key, Body: body, UpdatedAt: time.Now()}, nil
			},
		}
		n, err := NewNoteService(repo, sugar).Save(context.Background(), "userNote", "")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if n.Preview != "..." {
			t.Errorf("Expected preview %q, got %q", "...", n.Preview)
		}
	})

	t.Run("too long", func(t *testing.T) {
		_, err := NewNoteService(&mockNoteRepo{}, sugar).Save(context.Background(), "userNote", strings.Repeat("x", MaxNoteLength+1))
		if !errors.Is(err, ErrNoteTooLong) {
			t.Errorf("Expected ErrNoteTooLong, got %v", err)
		}
	})

	t.Run("db error", func(t *testing.T) {
		repo := &mockNoteRepo{
			saveFunc: func(ctx context.Context, key, body string) (*repository.Note, error) {
				return nil, errors.New("disk full")
			},
		}
		_, err := NewNoteService(repo, sugar).Save(context.Background(), "userNote", "x")
		if !errors.Is(err, ErrInternal) {
			t.Errorf("Expected ErrInternal, got %v", err)
		}
	})
}
