package services

import "errors"

// Shared errors mapped onto HTTP statuses in the handlers package.
var (
	// Lookup misses
	ErrClipNotFound  = errors.New("clip not found")
	ErrMatchNotFound = errors.New("match not found")

	// Invalid input
	ErrNoFileProvided        = errors.New("no file provided")
	ErrNoFileSelected        = errors.New("no file selected")
	ErrFileTypeNotAllowed    = errors.New("file type not allowed")
	ErrInvalidPagination     = errors.New("invalid pagination parameters")
	ErrInvalidStandingsTable = errors.New("standings must be a list of team records")
	ErrInvalidMatchPatch     = errors.New("match patch contains invalid field values")

	// Authentication
	ErrAuthInvalidCredentials = errors.New("invalid email or password")
)
