package audit

import "context"

// Store is append-only. Nothing updates or deletes audit rows; the event
// stream is the sole explanation for why a balance or status looks the way
// it does.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByAggregate(ctx context.Context, aggregateID string) ([]Event, error)
}
