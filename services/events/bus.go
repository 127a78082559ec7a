package events

import (
	"context"
	"sync"
	"time"

	"github.com/CrestPay/CrestPay-Backend/services/monitoring/logging"
)

// Event is a domain notification exchanged between modules. The ledger core
// publishes one per applied command at most; upstream modules (payments,
// subscriptions) publish the events that get translated into commands.
type Event struct {
	Name    string
	At      time.Time
	Payload interface{}
}

type HandlerFunc func(ctx context.Context, event Event)

// Bus is the in-process event bus. Delivery is asynchronous relative to the
// publisher; a slow or failing subscriber never stalls command handling.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string][]HandlerFunc
	wg     sync.WaitGroup
	logger *logging.Logger
}

func NewBus(logger *logging.Logger) *Bus {
	return &Bus{
		subs:   make(map[string][]HandlerFunc),
		logger: logger,
	}
}

func (b *Bus) Subscribe(name string, fn HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[name] = append(b.subs[name], fn)
}

// Publish hands the event to every subscriber on its own goroutine and
// returns immediately. It satisfies the engine's Publisher contract; the
// error return is always nil here but kept so remote buses can slot in.
func (b *Bus) Publish(ctx context.Context, event Event) error {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	b.mu.RLock()
	handlers := b.subs[event.Name]
	b.mu.RUnlock()

	for _, fn := range handlers {
		b.wg.Add(1)
		go func(fn HandlerFunc) {
			defer b.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("event subscriber panicked: ", r)
				}
			}()
			fn(ctx, event)
		}(fn)
	}

	return nil
}

// Drain blocks until all in-flight deliveries have finished. Used on
// shutdown and in tests.
func (b *Bus) Drain() {
	b.wg.Wait()
}
