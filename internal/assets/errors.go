package assets

import (
	"fmt"
	"strings"
)

// AssetErrorType represents the type of asset error.
type AssetErrorType int

const (
	// InvalidPath indicates the path argument has the wrong shape.
	InvalidPath AssetErrorType = iota
	// UnknownFolder indicates the folder is not in the allowed set.
	UnknownFolder
	// ListFailed indicates a folder listing could not be read.
	ListFailed
)

// String returns the string representation of the error type.
func (t AssetErrorType) String() string {
	switch t {
	case InvalidPath:
		return "InvalidPath"
	case UnknownFolder:
		return "UnknownFolder"
	case ListFailed:
		return "ListFailed"
	default:
		return "Unknown"
	}
}

// AssetError represents an error in the assets domain.
type AssetError struct {
	// Type is the error type classification.
	Type AssetErrorType
	// Message is the human-readable error message.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *AssetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error wrapping.
func (e *AssetError) Unwrap() error {
	return e.Cause
}

// NewAssetError creates a new AssetError.
func NewAssetError(typ AssetErrorType, message string, cause error) *AssetError {
	return &AssetError{
		Type:    typ,
		Message: message,
		Cause:   cause,
	}
}

// NewInvalidPathError creates an invalid path shape error.
func NewInvalidPathError(message string) *AssetError {
	return NewAssetError(InvalidPath, message, nil)
}

// NewUnknownFolderError creates an error naming the invalid folder and the
// allowed set.
func NewUnknownFolderError(folder string) *AssetError {
	return NewAssetError(UnknownFolder,
		fmt.Sprintf("unknown folder %q (allowed folders: %s)",
			folder, strings.Join(AllowedFolders, ", ")),
		nil)
}

// NewListError creates a listing failure error.
func NewListError(folder string, cause error) *AssetError {
	return NewAssetError(ListFailed,
		fmt.Sprintf("failed to list folder %q", folder), cause)
}
