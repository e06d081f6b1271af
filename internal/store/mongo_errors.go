package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// classifyMongoError maps driver errors onto the package sentinels.
func classifyMongoError(err error, op string) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrUserNotFound
	case isTransientMongoError(err):
		return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrExecutingQuery, op, err)
	}
}

func isTransientMongoError(err error) bool {
	if mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.HasErrorLabel("RetryableWriteError") ||
			serverErr.HasErrorLabel("TransientTransactionError")
	}

	return false
}
