package core

import (
	"maps"
	"slices"
)

// Context carries the full state of one agent run: the ordered conversation
// history plus a typed key/value scratch space tools may read and write.
//
// Message order is append-only; an appended message is never mutated, only
// followed by later messages. Context performs no internal locking: exactly
// one run owns a Context at a time and passes it by exclusive access to each
// model call and tool invocation. Concurrency safety across runs comes from
// every run owning its own Context.
type Context struct {
	messages []Message
	data     map[string]Value
}

// NewContext constructs an empty Context. Callers may pre-populate it with
// messages or scratch data before handing it to an agent run.
func NewContext() *Context {
	return &Context{data: map[string]Value{}}
}

// AppendMessage adds a message to the end of the conversation history.
func (c *Context) AppendMessage(m Message) {
	c.messages = append(c.messages, m)
}

// Messages returns a copy of the conversation history in append order.
// The copy keeps callers from violating the append-only invariant.
func (c *Context) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages in the history.
func (c *Context) Len() int { return len(c.messages) }

// LastMessage returns the most recently appended message, if any.
func (c *Context) LastMessage() (Message, bool) {
	if len(c.messages) == 0 {
		return Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

// Get returns the scratch value stored under key.
func (c *Context) Get(key string) (Value, bool) {
	v, ok := c.data[key]
	return v, ok
}

// Set stores a scratch value under key, replacing any previous value.
func (c *Context) Set(key string, v Value) {
	if c.data == nil {
		c.data = map[string]Value{}
	}
	c.data[key] = v
}

// Delete removes the scratch value stored under key. It reports whether a
// value was present.
func (c *Context) Delete(key string) bool {
	if _, ok := c.data[key]; !ok {
		return false
	}
	delete(c.data, key)
	return true
}

// Keys returns the scratch data keys in sorted order.
func (c *Context) Keys() []string {
	keys := slices.Collect(maps.Keys(c.data))
	slices.Sort(keys)
	return keys
}

// Clone returns an independent copy of the Context. Messages are copied by
// value; scratch values are shared (they are immutable variants).
func (c *Context) Clone() *Context {
	clone := &Context{
		messages: make([]Message, len(c.messages)),
		data:     make(map[string]Value, len(c.data)),
	}
	copy(clone.messages, c.messages)
	maps.Copy(clone.data, c.data)
	return clone
}
