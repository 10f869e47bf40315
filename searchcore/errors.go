package searchcore

import "errors"

// Sentinel errors surfaced by the core. Callers should compare with errors.Is.
var (
	ErrNegativeID          = errors.New("document id is negative")
	ErrDuplicateID         = errors.New("document id already exists")
	ErrInvalidDocumentWord = errors.New("document contains a control character")
	ErrInvalidStopWord     = errors.New("stop word contains a control character")
	ErrInvalidQueryWord    = errors.New("invalid query word")
	ErrUnknownDocument     = errors.New("unknown document id")
)
