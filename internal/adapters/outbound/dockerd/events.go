package dockerd

import (
	"context"
	"fmt"

	docker "github.com/fsouza/go-dockerclient"

	"github.com/skillcoder/dockerscaler-controller/internal/logic/eventfeed"
)

const eventChannelSize = 64

var _ eventfeed.EventSource = (*Adapter)(nil)

// SubscribeEventsQuery attaches a listener to the daemon's event
// stream, filtered to container events. The returned channel closes
// when the stream ends (the client signals that with an EOF event);
// the unsubscribe func detaches the listener.
func (a *Adapter) SubscribeEventsQuery(ctx context.Context) (<-chan eventfeed.Raw, func() error, error) {
	apiCh := make(chan *docker.APIEvents, eventChannelSize)

	err := a.client.AddEventListenerWithOptions(docker.EventsOptions{
		Filters: map[string][]string{"type": {"container"}},
	}, apiCh)
	if err != nil {
		return nil, nil, fmt.Errorf("add event listener: %w", err)
	}

	out := make(chan eventfeed.Raw, eventChannelSize)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-apiCh:
				if !ok {
					return
				}

				if ev == nil || ev.Type == "EOF" {
					return
				}

				select {
				case out <- toRawEvent(ev):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	unsubscribe := func() error {
		if err := a.client.RemoveEventListener(apiCh); err != nil {
			return fmt.Errorf("remove event listener: %w", err)
		}

		return nil
	}

	return out, unsubscribe, nil
}

func toRawEvent(ev *docker.APIEvents) eventfeed.Raw {
	name := ev.Actor.Attributes["name"]

	return eventfeed.Raw{
		Type:      ev.Type,
		Action:    ev.Action,
		ActorID:   ev.Actor.ID,
		ActorName: name,
		TimeNano:  ev.TimeNano,
	}
}
