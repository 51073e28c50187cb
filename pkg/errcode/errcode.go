package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError
	OpenFileError

	// Logging errors
	CreateLogFileError

	// Dataset errors
	MissingFieldError
	InvalidFormatError
	EmptyDatasetError

	// Transport errors
	NetworkFailureError
	SizeMismatchError

	// Query errors
	NoMatchError
)
