package dispatch

import (
	"errors"
	"sort"
	"sync"

	"github.com/example/order-notifier/internal/channel"
)

// Registry holds the named channel senders available to the dispatcher plus
// the name used when a caller does not pick one. Registration happens during
// startup; lookups treat the set as read-only, so a RWMutex keeps late
// registration safe without slowing the dispatch path.
type Registry struct {
	mu          sync.RWMutex
	senders     map[string]channel.Sender
	defaultName string
}

// NewRegistry constructs an empty registry whose default channel is
// defaultName. The default does not need to be registered yet, only by the
// time the first unaddressed dispatch happens.
func NewRegistry(defaultName string) *Registry {
	return &Registry{
		senders:     make(map[string]channel.Sender),
		defaultName: defaultName,
	}
}

// Register adds a sender under its channel name. Registering a second sender
// under an existing name fails with ErrDuplicateChannel so one name can never
// resolve to two targets.
func (r *Registry) Register(s channel.Sender) error {
	if s == nil {
		return errors.New("registry: sender is required")
	}

	name := s.Channel()
	if name == "" {
		return errors.New("registry: sender has an empty channel name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.senders[name]; exists {
		return channel.WrapDuplicate(name)
	}
	r.senders[name] = s
	return nil
}

// Lookup resolves a sender by channel name, failing with ErrUnknownChannel
// when no sender is registered under it.
func (r *Registry) Lookup(name string) (channel.Sender, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.senders[name]
	if !ok {
		return nil, channel.WrapUnknown(name)
	}
	return s, nil
}

// Default resolves the configured default sender.
func (r *Registry) Default() (channel.Sender, error) {
	return r.Lookup(r.defaultName)
}

// DefaultName returns the name the registry falls back to.
func (r *Registry) DefaultName() string {
	return r.defaultName
}

// Channels lists the registered channel names in stable order.
func (r *Registry) Channels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.senders))
	for name := range r.senders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
