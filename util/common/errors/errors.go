package errors

import (
	"errors"
	"fmt"
)

// Failure kinds of a deployment run. Every one of them is fatal.
var (
	ErrInvalidRepositorySource = errors.New("invalid repository source")
	ErrMissingCredentials      = errors.New("missing credentials")
	ErrOfflineMode             = errors.New("offline mode")
	ErrArtifactNotFound        = errors.New("artifact not found")
	ErrListingFetchFailed      = errors.New("listing fetch failed")
	ErrAuthTokenNotFound       = errors.New("auth token not found")
	ErrAssetAlreadyExists      = errors.New("asset already exists")
	ErrAssetNotFound           = errors.New("asset not found")
	ErrAssetDeleteFailed       = errors.New("asset delete failed")
	ErrNegotiationFailed       = errors.New("negotiation failed")
	ErrMalformedDescriptor     = errors.New("malformed descriptor")
	ErrIncompleteDescriptor    = errors.New("incomplete descriptor")
	ErrPartEncodingFailed      = errors.New("part encoding failed")
	ErrUploadFailed            = errors.New("upload failed")
)

// Common errors that can be used across packages
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidOperation = errors.New("invalid operation")
)

// DeployError is a failure of one pipeline stage. It matches its Kind with
// errors.Is and unwraps to the underlying cause, if any.
type DeployError struct {
	Kind    error
	Message string
	Wrapped error
}

func (e *DeployError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

func (e *DeployError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is the kind of this error.
func (e *DeployError) Is(target error) bool {
	return e.Kind == target
}

// NewDeployError creates a DeployError with a formatted message.
func NewDeployError(kind error, format string, args ...interface{}) error {
	return &DeployError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapDeployError creates a DeployError carrying the underlying cause.
func WrapDeployError(kind error, cause error, format string, args ...interface{}) error {
	return &DeployError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Wrapped: cause,
	}
}

// KindOf returns the failure kind of err, or nil when err is not a DeployError.
func KindOf(err error) error {
	var de *DeployError
	if errors.As(err, &de) {
		return de.Kind
	}
	return nil
}

// ValidationError represents an error that occurs during validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// FileError represents an error that occurs during file operations
type FileError struct {
	Path    string
	Op      string
	Wrapped error
}

func (e *FileError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s operation failed on %s: %v", e.Op, e.Path, e.Wrapped)
	}
	return fmt.Sprintf("%s operation failed on %s", e.Op, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Wrapped
}

// NewFileError creates a new FileError
func NewFileError(path, op string, wrapped error) error {
	return &FileError{
		Path:    path,
		Op:      op,
		Wrapped: wrapped,
	}
}

// VCSError represents an error that occurs during version control operations
type VCSError struct {
	Op      string
	Path    string
	Wrapped error
}

func (e *VCSError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("VCS %s operation failed for %s: %v", e.Op, e.Path, e.Wrapped)
	}
	return fmt.Sprintf("VCS %s operation failed for %s", e.Op, e.Path)
}

func (e *VCSError) Unwrap() error {
	return e.Wrapped
}

// NewVCSError creates a new VCSError
func NewVCSError(op, path string, wrapped error) error {
	return &VCSError{
		Op:      op,
		Path:    path,
		Wrapped: wrapped,
	}
}

// Is reports whether target matches err.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
