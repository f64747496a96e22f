package relay

import "sync"

// Disposable is anything that can release itself, typically a
// Subscription.
type Disposable interface {
	Dispose()
}

// Bag collects subscriptions so an owner can release them all when it
// is torn down. The zero value is ready to use.
type Bag struct {
	mu    sync.Mutex
	items []Disposable
}

func (b *Bag) Add(d Disposable) {
	b.mu.Lock()
	b.items = append(b.items, d)
	b.mu.Unlock()
}

// Dispose releases everything added so far and empties the bag.
func (b *Bag) Dispose() {
	b.mu.Lock()
	items := b.items
	b.items = nil
	b.mu.Unlock()

	for _, d := range items {
		d.Dispose()
	}
}
