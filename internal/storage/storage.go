package storage

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrCommentNotFound = errors.New("comment not found")
)
