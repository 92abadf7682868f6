package resourceprovider

// RemoveSource unregisters sourceID and waits for any loads already in
// flight for it to finish before returning. Reports false if no source
// is registered under sourceID. No in-flight load is cancelled: the
// provider has no cancellation story (a deliberate non-goal), so
// removal just waits the load out.
//
// The drain is race-free because the source is removed from the
// registry before any waiting happens, and resolve checks under the
// lock that the entry it was given is still registered: once sourceID
// is unlinked, resolve can no longer add new entries to
// entry.inflight, so the in-flight set collected below is final.
func (p *Provider) RemoveSource(sourceID string) bool {
	p.mu.Lock()
	entry, ok := p.sources[sourceID]
	if !ok {
		p.mu.Unlock()
		return false
	}
	delete(p.sources, sourceID)
	p.mu.Unlock()

	p.drainEntry(entry)
	p.logger.sourceRemoved(sourceID)
	return true
}

// ClearSources unregisters every source, waiting for each one's
// in-flight loads to finish.
func (p *Provider) ClearSources() {
	p.mu.Lock()
	ids := make([]string, 0, len(p.sources))
	entries := make([]*sourceEntry, 0, len(p.sources))
	for id, e := range p.sources {
		ids = append(ids, id)
		entries = append(entries, e)
	}
	p.sources = make(map[string]*sourceEntry)
	p.mu.Unlock()

	for _, e := range entries {
		p.drainEntry(e)
	}
	for _, id := range ids {
		p.logger.sourceRemoved(id)
	}
}

// MarkUnused evicts resourceID from sourceID's cache, waiting out a
// load already in flight for it first so the eviction is never raced
// by a load that started before the call. A later Get for the same id
// will load it again from scratch.
func (p *Provider) MarkUnused(sourceID, resourceID string) error {
	p.mu.Lock()
	entry, ok := p.sources[sourceID]
	if !ok {
		p.mu.Unlock()
		return &UnknownSourceError{SourceID: sourceID}
	}
	h, inFlight := entry.inflight[resourceID]
	p.mu.Unlock()

	if inFlight {
		h.wait()
	}

	p.mu.Lock()
	delete(entry.cache, resourceID)
	p.mu.Unlock()

	p.logger.markedUnused(sourceID, resourceID)
	return nil
}

// MarkAllUnused evicts every cached resource for sourceID, waiting out
// all of its currently in-flight loads first.
func (p *Provider) MarkAllUnused(sourceID string) error {
	p.mu.Lock()
	entry, ok := p.sources[sourceID]
	if !ok {
		p.mu.Unlock()
		return &UnknownSourceError{SourceID: sourceID}
	}
	handles := make([]*handle, 0, len(entry.inflight))
	for _, h := range entry.inflight {
		handles = append(handles, h)
	}
	p.mu.Unlock()

	for _, h := range handles {
		h.wait()
	}

	p.mu.Lock()
	entry.cache = make(map[string]any)
	p.mu.Unlock()

	p.logger.event("marked_all_unused", map[string]interface{}{"source_id": sourceID})
	return nil
}

// drainEntry waits for every load currently in flight for entry to
// finish. Must only be called after entry has been unlinked from
// p.sources, so no new in-flight loads can appear for it.
func (p *Provider) drainEntry(entry *sourceEntry) {
	p.mu.Lock()
	handles := make([]*handle, 0, len(entry.inflight))
	for _, h := range entry.inflight {
		handles = append(handles, h)
	}
	p.mu.Unlock()

	for _, h := range handles {
		h.wait()
	}
}
