package dockerd

// NotFoundError represents a "container or image not found" case that
// callers treat as already satisfied rather than as a failure.
type NotFoundError struct{}

func (e *NotFoundError) Error() string {
	return "not found"
}

func (e *NotFoundError) IsNotFound() {}

var errNotFound = &NotFoundError{}

// ImageInUseError represents an image that is still referenced by a
// container and so cannot be reclaimed yet.
type ImageInUseError struct{}

func (e *ImageInUseError) Error() string {
	return "image in use"
}

func (e *ImageInUseError) IsInUse() {}

var errImageInUse = &ImageInUseError{}
