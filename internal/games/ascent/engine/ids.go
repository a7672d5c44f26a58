package engine

// idAllocator hands out entity IDs from a counter. IDs are never reused
// within a world, so consumers may key per-entity state on them.
type idAllocator struct {
	next EntityID
}

func (a *idAllocator) Next() EntityID {
	a.next++
	return a.next
}
