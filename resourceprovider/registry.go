package resourceprovider

import (
	"reflect"
	"sort"
)

// sourceEntry is the type-erased registration record for one source.
// typ records the concrete R a source was registered with so later
// accesses can be checked against it with reflect, since the registry
// itself (map[string]*sourceEntry) cannot carry Go type parameters.
//
// cache and inflight are both keyed by resource id and are mutually
// exclusive per id: an id is in at most one of them at a time, never
// both, which is what lets resolve() decide "cached, in flight, or
// needs submitting" with a single map lookup each.
type sourceEntry struct {
	typ      reflect.Type
	list     func() ([]string, error)
	load     func(id string) (any, error)
	cache    map[string]any
	inflight map[string]*handle
}

func newSourceEntry[R any](src Source[R]) *sourceEntry {
	return &sourceEntry{
		typ: reflect.TypeOf((*R)(nil)).Elem(),
		list: func() ([]string, error) {
			return src.List()
		},
		load: func(id string) (any, error) {
			return src.Load(id)
		},
		cache:    make(map[string]any),
		inflight: make(map[string]*handle),
	}
}

// AddSource registers src under sourceID with the resource type R. It
// is a package-level generic function, not a method, because Go does
// not allow methods to carry their own type parameters: *Provider
// stays non-generic while still hosting an arbitrary number of
// differently-typed sources.
func AddSource[R any](p *Provider, sourceID string, src Source[R]) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPoolClosed
	}
	if _, exists := p.sources[sourceID]; exists {
		return &DuplicateSourceError{SourceID: sourceID}
	}

	p.sources[sourceID] = newSourceEntry[R](src)
	p.logger.sourceAdded(sourceID)
	return nil
}

// GetSource returns a type-safe view over the source registered under
// sourceID. Returns a *WrongTypeError if sourceID was registered with a
// different resource type than R, and an *UnknownSourceError if no
// source is registered under sourceID.
func GetSource[R any](p *Provider, sourceID string) (SourceView[R], error) {
	p.mu.Lock()
	entry, ok := p.sources[sourceID]
	p.mu.Unlock()

	if !ok {
		return SourceView[R]{}, &UnknownSourceError{SourceID: sourceID}
	}

	want := reflect.TypeOf((*R)(nil)).Elem()
	if entry.typ != want {
		return SourceView[R]{}, &WrongTypeError{SourceID: sourceID, Want: want, Got: entry.typ}
	}

	return SourceView[R]{provider: p, sourceID: sourceID}, nil
}

// Sources returns the ids of every currently-registered source, sorted.
func (p *Provider) Sources() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	ids := make([]string, 0, len(p.sources))
	for id := range p.sources {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (p *Provider) entryFor(sourceID string, want reflect.Type) (*sourceEntry, error) {
	p.mu.Lock()
	entry, ok := p.sources[sourceID]
	p.mu.Unlock()

	if !ok {
		return nil, &UnknownSourceError{SourceID: sourceID}
	}
	if entry.typ != want {
		return nil, &WrongTypeError{SourceID: sourceID, Want: want, Got: entry.typ}
	}
	return entry, nil
}
