package service

import (
	"context"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"dashboard/internal/repository"
)

// MaxNoteLength is the longest note body accepted, in characters.
const MaxNoteLength = 10000

// previewLength is the number of characters shown in the collapsed notes panel.
const previewLength = 15

// NoteView is a note as shown on the dashboard.
type NoteView struct {
	Key       string
	Body      string
	Preview   string
	UpdatedAt string
}

// NoteServiceInterface defines the operations available for notes.
type NoteServiceInterface interface {
	Load(ctx context.Context, key string) (*NoteView, error)
	Save(ctx context.Context, key, body string) (*NoteView, error)
}

var _ NoteServiceInterface = (*NoteService)(nil)

// NoteService loads and saves dashboard notes.
type NoteService struct {
	repo repository.NoteRepository
	log  *zap.SugaredLogger
}

// NewNoteService creates a new NoteService.
func NewNoteService(repo repository.NoteRepository, logger *zap.SugaredLogger) *NoteService {
	return &NoteService{repo: repo, log: logger}
}

// Load returns the note stored under key.
func (s *NoteService) Load(ctx context.Context, key string) (*NoteView, error) {
	if !IsValidNoteKey(key) {
		return nil, ErrInvalidNoteKey
	}
	n, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Errorw("DB error fetching note", "key", key, "error", err)
		return nil, ErrInternal
	}
	if n == nil {
		return nil, ErrNotFound
	}
	v := noteView(n)
	// A stored empty note loads without a preview.
	if n.Body == "" {
		v.Preview = ""
	}
	return v, nil
}

// Save stores body under key, replacing any previous note.
func (s *NoteService) Save(ctx context.Context, key, body string) (*NoteView, error) {
	if !IsValidNoteKey(key) {
		return nil, ErrInvalidNoteKey
	}
	if utf8.RuneCountInString(body) > MaxNoteLength {
		return nil, ErrNoteTooLong
	}
	n, err := s.repo.Save(ctx, key, body)
	if err != nil {
		s.log.Errorw("DB error saving note", "key", key, "error", err)
		return nil, ErrInternal
	}
	s.log.Infow("Note saved", "key", key, "length", utf8.RuneCountInString(body))
	return noteView(n), nil
}

// Preview returns the first characters of a note followed by an ellipsis.
func Preview(body string) string {
	r := []rune(body)
	if len(r) > previewLength {
		r = r[:previewLength]
	}
	return string(r) + "..."
}

func noteView(n *repository.Note) *NoteView {
	return &NoteView{
		Key:       n.Key,
		Body:      n.Body,
		Preview:   Preview(n.Body),
		UpdatedAt: n.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
