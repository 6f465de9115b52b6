package eventfeed

import "context"

// EventSource is the port for the runtime's live event stream. The
// returned channel is closed by the adapter when the stream ends; the
// unsubscribe func releases the subscription.
type EventSource interface {
	SubscribeEventsQuery(ctx context.Context) (<-chan Raw, func() error, error)
}
