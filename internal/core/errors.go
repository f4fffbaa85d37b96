package core

import "errors"

var (
	ErrMalformedRepositoryReference = errors.New("malformed repository reference")
	ErrAuthorizationQueryFailed     = errors.New("authorization query failed")
	ErrPermissionDenied             = errors.New("permission denied")
	ErrEnrichmentFailed             = errors.New("pull request enrichment failed")
	ErrDispatchFailed               = errors.New("dispatch failed")
	ErrReactionFailed               = errors.New("reaction failed")
	ErrUnknownCommand               = errors.New("unknown command")
	ErrMissingSlashCommand          = errors.New("client payload has no slash command")
)
