package scaler

import "errors"

var (
	ErrInvalidPolicy     = errors.New("invalid scaling policy")
	ErrUnknownAction     = errors.New("unknown command action")
	ErrCommandQueueFull  = errors.New("command queue full")
	ErrCloneLimitReached = errors.New("clone limit reached for parent")
	ErrCreateClone       = errors.New("create clone")
	ErrRemoveClone       = errors.New("remove clone")
	ErrSyncRegistry      = errors.New("sync registry")
)
