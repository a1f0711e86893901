package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrSessionNotFound  = errors.New("studio session not found")
	ErrQuoteRequired    = errors.New("configuration requires a quote")
	ErrNoCustomArtwork  = errors.New("configuration has no custom artwork")
	ErrInvalidSelection = errors.New("invalid selection")
)
