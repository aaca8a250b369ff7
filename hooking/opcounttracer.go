package hooking

import (
	"sync"
)

// ItemCounter is implemented by hook details that affect more than one item.
type ItemCounter interface {
	NumItems() int
}

// OpCountTracer counts how many times each hook position is triggered on the
// hookables it is attached to.
type OpCountTracer struct {
	lock sync.Mutex

	posNames []string
	posCount map[string]uint64
	items    map[string]uint64
}

// NewOpCountTracer creates a new OpCountTracer
func NewOpCountTracer() *OpCountTracer {
	t := &OpCountTracer{
		posCount: make(map[string]uint64),
		items:    make(map[string]uint64),
	}

	return t
}

// Func counts the position of the hook context.
func (t *OpCountTracer) Func(ctx HookCtx) {
	t.lock.Lock()
	defer t.lock.Unlock()

	name := ctx.Pos.Name

	_, ok := t.posCount[name]
	if !ok {
		t.posNames = append(t.posNames, name)
	}

	t.posCount[name]++

	if d, ok := ctx.Detail.(ItemCounter); ok {
		t.items[name] += uint64(d.NumItems())
	} else {
		t.items[name]++
	}
}

// GetPosNames returns the names of all the positions observed, in the order
// they were first seen.
func (t *OpCountTracer) GetPosNames() []string {
	t.lock.Lock()
	defer t.lock.Unlock()

	names := make([]string, len(t.posNames))
	copy(names, t.posNames)

	return names
}

// GetOpCount returns the number of times the position with the given name was
// triggered.
func (t *OpCountTracer) GetOpCount(posName string) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.posCount[posName]
}

// GetItemCount returns the number of items affected at the position with the
// given name. A hook whose Detail is an ItemCounter counts for NumItems items,
// any other hook for one.
func (t *OpCountTracer) GetItemCount(posName string) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.items[posName]
}
