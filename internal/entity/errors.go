package entity

import "errors"

// Domain errors for the learning state and its collaborators.
var (
	ErrSnapshotNotFound   = errors.New("learning snapshot not found")
	ErrInvalidLearner     = errors.New("invalid learner name")
	ErrInvalidWordTerm    = errors.New("invalid word term")
	ErrDuplicateWordTerm  = errors.New("duplicate word term")
	ErrVocabularyNotFound = errors.New("vocabulary not found")
)
