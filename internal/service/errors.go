package service

import "errors"

// ErrNotFound indicates the requested resource was not found.
var ErrNotFound = errors.New("not found")

// ErrInternal indicates an internal server error.
var ErrInternal = errors.New("internal error")

// ErrInvalidNoteKey indicates the note key format is invalid.
var ErrInvalidNoteKey = errors.New("invalid note key")

// ErrNoteTooLong indicates the note body exceeds MaxNoteLength.
var ErrNoteTooLong = errors.New("note is too long")

const maxNoteKeyLength = 64

// IsValidNoteKey checks whether a key is 1-64 ASCII letters, digits, '-' or '_'.
func IsValidNoteKey(key string) bool {
	if key == "" || len(key) > maxNoteKeyLength {
		return false
	}
	for _, c := range key {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
