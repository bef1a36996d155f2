package service

import "errors"

var (
	ErrInternal             = errors.New("internal server error")
	ErrPostNotFound         = errors.New("post not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrEntityNotFound       = errors.New("entity not found")
	ErrContributionNotFound = errors.New("contribution not found")
	ErrContributionResolved = errors.New("contribution is already resolved")
	ErrNoAccess             = errors.New("no access")
	ErrInvalidVote          = errors.New("vote must be 1, -1 or 0")
	ErrInvalidFlag          = errors.New("invalid engagement flag")
	ErrCommentPostMismatch  = errors.New("parent comment belongs to another post")
	ErrCannotFollowSelf     = errors.New("cannot follow yourself")
	ErrChatQuotaExceeded    = errors.New("daily chat quota exceeded")
)
