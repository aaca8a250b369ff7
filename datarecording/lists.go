package datarecording

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sarchlab/clarus/hooking"
	"github.com/sarchlab/clarus/list"
)

// ListTable is the table that holds list snapshots.
const ListTable = "lists"

// ErrNotRecorded is returned when no snapshot exists for a list name.
var ErrNotRecorded = errors.New("list not recorded")

// ListEntry is one snapshot of a list in its text form.
type ListEntry struct {
	Name string
	Size int
	Text string
}

// Recordable is a list that can be snapshotted. Every *list.List satisfies
// it.
type Recordable interface {
	Size() int
	String() string
}

// WatchableList is a list whose mutations can be observed.
type WatchableList interface {
	Recordable
	hooking.Hookable
}

// ListRecorder writes list snapshots into the ListTable of a DataRecorder.
type ListRecorder struct {
	lock       sync.Mutex
	recorder   DataRecorder
	tableReady bool
}

// NewListRecorder creates a ListRecorder on top of a DataRecorder.
func NewListRecorder(recorder DataRecorder) *ListRecorder {
	return &ListRecorder{recorder: recorder}
}

// Record buffers a snapshot of l under the given name. Call Flush to make
// the snapshot visible to readers.
func (r *ListRecorder) Record(name string, l Recordable) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if !r.tableReady {
		r.recorder.CreateTable(ListTable, ListEntry{})
		r.tableReady = true
	}

	r.recorder.InsertData(ListTable, ListEntry{
		Name: name,
		Size: l.Size(),
		Text: l.String(),
	})
}

// Watch records a snapshot of l now and after every later mutation made
// through any handle that shares its buffer.
func (r *ListRecorder) Watch(name string, l WatchableList) {
	r.Record(name, l)
	l.AcceptHook(&listWatcher{recorder: r, name: name})
}

// Flush writes the buffered snapshots.
func (r *ListRecorder) Flush() {
	r.recorder.Flush()
}

type listWatcher struct {
	recorder *ListRecorder
	name     string
}

func (w *listWatcher) Func(ctx hooking.HookCtx) {
	l, ok := ctx.Domain.(Recordable)
	if !ok {
		panic(fmt.Sprintf("cannot record domain of type %T", ctx.Domain))
	}

	w.recorder.Record(w.name, l)
}

// LoadList decodes the latest snapshot recorded under name.
func LoadList[T any](
	ctx context.Context,
	reader DataReader,
	name string,
	parse list.Parser[T],
) (*list.List[T], error) {
	entries, err := queryEntries(ctx, reader, name, QueryParams{
		OrderBy: "rowid DESC",
		Limit:   1,
	})
	if err != nil {
		return nil, err
	}

	return decodeEntry(entries[0], parse)
}

// LoadHistory decodes every snapshot recorded under name, oldest first.
func LoadHistory[T any](
	ctx context.Context,
	reader DataReader,
	name string,
	parse list.Parser[T],
) (*list.List[*list.List[T]], error) {
	entries, err := queryEntries(ctx, reader, name, QueryParams{
		OrderBy: "rowid ASC",
	})
	if err != nil {
		return nil, err
	}

	history := list.New[*list.List[T]]()
	history.Reserve(len(entries))

	for _, e := range entries {
		l, err := decodeEntry(e, parse)
		if err != nil {
			return nil, err
		}

		history.AppendValue(l)
	}

	return history, nil
}

// RecordedNames returns the distinct names in the ListTable, sorted.
func RecordedNames(ctx context.Context, reader DataReader) ([]string, error) {
	reader.MapTable(ListTable, ListEntry{})

	results, _, err := reader.Query(ctx, ListTable, QueryParams{
		OrderBy: "Name ASC",
	})
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, res := range results {
		name := res.(*ListEntry).Name
		if len(names) == 0 || names[len(names)-1] != name {
			names = append(names, name)
		}
	}

	return names, nil
}

func queryEntries(
	ctx context.Context,
	reader DataReader,
	name string,
	params QueryParams,
) ([]*ListEntry, error) {
	reader.MapTable(ListTable, ListEntry{})

	params.Where = "Name = ?"
	params.Args = []any{name}

	results, _, err := reader.Query(ctx, ListTable, params)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotRecorded, name)
	}

	entries := make([]*ListEntry, len(results))
	for i, res := range results {
		entries[i] = res.(*ListEntry)
	}

	return entries, nil
}

func decodeEntry[T any](e *ListEntry, parse list.Parser[T]) (*list.List[T], error) {
	l, err := list.Parse(e.Text, parse)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", e.Name, err)
	}

	if l.Size() != e.Size {
		return nil, fmt.Errorf("%w: list %s has %d elements, recorded size %d",
			list.ErrFormat, e.Name, l.Size(), e.Size)
	}

	return l, nil
}
