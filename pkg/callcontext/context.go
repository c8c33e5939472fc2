package callcontext

import (
	"context"
	"errors"
	"time"
)

type KeyContext string

var (
	keyRequestID     KeyContext = "request_id"
	keyOperation     KeyContext = "operation"
	keyCallStartTime KeyContext = "call_start_time"
)

// Begin derives the context for one outbound call. The timeout is the only
// cancellation mechanism for the call; a non-positive timeout keeps the
// parent's deadline.
func Begin(parentCtx context.Context, operation string, timeout time.Duration) (context.Context, context.CancelFunc) {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(parentCtx, timeout)
	} else {
		ctx, cancel = context.WithCancel(parentCtx)
	}

	ctx = context.WithValue(ctx, keyOperation, operation)
	ctx = context.WithValue(ctx, keyCallStartTime, time.Now())

	return ctx, cancel
}

// WithRequestID attaches the inbound request id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetRequestID extracts the request id from context
func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(keyRequestID).(string)
	return requestID
}

// GetOperation extracts the operation name from context
func GetOperation(ctx context.Context) string {
	operation, _ := ctx.Value(keyOperation).(string)
	return operation
}

// GetCallStartTime extracts call start time from context
func GetCallStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyCallStartTime).(time.Time)
	return startTime, ok
}

// Elapsed returns the time since Begin, or zero outside a call
func Elapsed(ctx context.Context) time.Duration {
	startTime, ok := GetCallStartTime(ctx)
	if !ok {
		return 0
	}
	return time.Since(startTime)
}

// IsTimeout reports whether err was caused by the call deadline
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
