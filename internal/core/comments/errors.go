package comments

import "errors"

var (
	// ErrPostNotFound indicates the post being commented on doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrParentNotFound indicates the comment being replied to doesn't exist
	// on the same post
	ErrParentNotFound = errors.New("parent comment not found")

	// ErrInvalidReply indicates isReply is missing, or a reply has no valid parentID
	ErrInvalidReply = errors.New("invalid reply reference")

	// ErrContentTooLong indicates comment content exceeds 10000 graphemes
	ErrContentTooLong = errors.New("comment content exceeds 10000 graphemes")

	// ErrContentEmpty indicates comment content is empty
	ErrContentEmpty = errors.New("comment content is required")

	// ErrInvalidPost indicates postID is not a positive integer
	ErrInvalidPost = errors.New("postID must be a positive integer")

	// ErrUserRequired indicates the commenting user is missing
	ErrUserRequired = errors.New("userID is required")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrParentNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidReply) ||
		errors.Is(err, ErrContentTooLong) ||
		errors.Is(err, ErrContentEmpty) ||
		errors.Is(err, ErrInvalidPost) ||
		errors.Is(err, ErrUserRequired)
}
