package list

import "github.com/sarchlab/clarus/hooking"

// HookPosAppend marks when elements are appended to a list. The hook item is
// the appended value, or a slice of values for Push and Extend.
var HookPosAppend = &hooking.HookPos{Name: "List Append"}

// HookPosRemove marks when elements are removed from a list. The hook item is
// the removed value, or a slice of values for RemoveN.
var HookPosRemove = &hooking.HookPos{Name: "List Remove"}

// HookPosClear marks when a list is cleared.
var HookPosClear = &hooking.HookPos{Name: "List Clear"}

// Mutation is the hook detail of list mutations. It locates the span of the
// buffer that was touched.
type Mutation struct {
	Index int
	Count int
}

// NumItems returns the number of elements touched.
func (m Mutation) NumItems() int {
	return m.Count
}

// AcceptHook registers a hook on the list's buffer. Every handle that shares
// the buffer triggers the hook.
func (l *List[T]) AcceptHook(hook hooking.Hook) {
	l.buffer().AcceptHook(hook)
}

// NumHooks returns the number of hooks registered on the list's buffer.
func (l *List[T]) NumHooks() int {
	if l.buf == nil {
		return 0
	}

	return l.buf.NumHooks()
}

// Hooks returns the hooks registered on the list's buffer.
func (l *List[T]) Hooks() []hooking.Hook {
	if l.buf == nil {
		return nil
	}

	return l.buf.Hooks()
}

func (l *List[T]) invokeHook(pos *hooking.HookPos, item any, detail Mutation) {
	if l.buf.NumHooks() == 0 {
		return
	}

	l.buf.InvokeHook(hooking.HookCtx{
		Domain: l,
		Pos:    pos,
		Item:   item,
		Detail: detail,
	})
}
