// Package observer provides small fan-out registries for stores that push
// full-state snapshots to watchers. Every Subscribe returns its own cancel;
// registering a second watcher never evicts the first.
package observer

import "sync"

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Registry fans a snapshot out to every current subscriber, in
// registration order.
type Registry[T any] struct {
	mu   sync.Mutex
	next int
	subs []subscriber[T]
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Subscribe registers fn and returns a cancel that removes exactly this
// registration. Cancel is idempotent.
func (r *Registry[T]) Subscribe(fn func(T)) func() {
	r.mu.Lock()
	id := r.next
	r.next++
	r.subs = append(r.subs, subscriber[T]{id: id, fn: fn})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			for i, s := range r.subs {
				if s.id == id {
					r.subs = append(r.subs[:i], r.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Publish delivers v synchronously to every subscriber. Callers serialize
// Publish with their own state lock, which preserves application order.
func (r *Registry[T]) Publish(v T) {
	r.mu.Lock()
	fns := make([]func(T), len(r.subs))
	for i, s := range r.subs {
		fns[i] = s.fn
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// Keyed holds one Registry per key, created lazily on first Subscribe or
// Publish. Used for per-conversation watchers.
type Keyed[K comparable, T any] struct {
	mu   sync.Mutex
	regs map[K]*Registry[T]
}

func NewKeyed[K comparable, T any]() *Keyed[K, T] {
	return &Keyed[K, T]{regs: make(map[K]*Registry[T])}
}

func (k *Keyed[K, T]) registry(key K) *Registry[T] {
	k.mu.Lock()
	defer k.mu.Unlock()
	reg, ok := k.regs[key]
	if !ok {
		reg = NewRegistry[T]()
		k.regs[key] = reg
	}
	return reg
}

func (k *Keyed[K, T]) Subscribe(key K, fn func(T)) func() {
	return k.registry(key).Subscribe(fn)
}

func (k *Keyed[K, T]) Publish(key K, v T) {
	k.mu.Lock()
	reg, ok := k.regs[key]
	k.mu.Unlock()
	if ok {
		reg.Publish(v)
	}
}
