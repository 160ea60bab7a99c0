package share

import "errors"

var (
	// validation
	ErrEmptyFolderPath = errors.New("folder path is required")
	ErrNotDirectory    = errors.New("path is not a directory")
	ErrIsDirectory     = errors.New("cannot download a directory")

	// not found; one message for unknown, expired and revoked
	// tokens so responses leak nothing about which it was
	ErrLinkNotFound   = errors.New("invalid or expired link")
	ErrFolderNotFound = errors.New("folder not found")
	ErrPathNotFound   = errors.New("path not found")

	// sandbox violation
	ErrAccessDenied = errors.New("access denied")

	// password-protected link accessed without the right password
	ErrPasswordRequired = errors.New("password required")
)
