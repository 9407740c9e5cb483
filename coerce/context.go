package coerce

import (
	"github.com/K-Mistele/jsonish-sub001/value"
)

const maxUnionDepth = 25

// frame identifies one (schema node, Value) pairing currently being
// resolved. Re-entering the same frame means a recursive alias or union
// has looped back on itself without making progress, which §4.2.5 requires
// we detect and fail cleanly rather than recurse forever.
type frame struct {
	schemaIdentity string
	valuePtr       *value.Value
}

// Context carries the recursion guard and the per-call settings for a
// single top-level Parse invocation (§5: scoped to one call, never
// global); it holds no memoization cache. It is not safe for concurrent
// use; each parse call gets its own.
type Context struct {
	IsDone   bool
	Original string
	stack    []frame

	// AllowNoneAsNull configures the open question from §9: whether bare
	// "None"/"Null" strings coerce to null at a Nullable schema position.
	// Default false, matching the primitive-level behavior the spec says
	// is authoritative unless a caller opts in.
	AllowNoneAsNull bool
}

func NewContext(isDone bool) *Context {
	return &Context{IsDone: isDone}
}

// Enter pushes a frame and reports whether doing so is legal: depth under
// the cap, and the exact frame not already present on the stack.
func (c *Context) Enter(schemaIdentity string, v *value.Value) (leave func(), ok bool) {
	if len(c.stack) >= maxUnionDepth {
		return func() {}, false
	}
	for _, fr := range c.stack {
		if fr.schemaIdentity == schemaIdentity && fr.valuePtr == v {
			return func() {}, false
		}
	}
	c.stack = append(c.stack, frame{schemaIdentity: schemaIdentity, valuePtr: v})
	depth := len(c.stack)
	return func() {
		c.stack = c.stack[:depth-1]
	}, true
}
