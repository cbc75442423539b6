package scene

// List is the ordered primitive list for one frame. Index 0 is topmost;
// increasing index is further back.
//
// A list is built fresh for every render, is immutable for the duration of
// the pass, and is dropped (together with any transient surfaces it owns,
// such as pre-rendered text bitmaps) when the pass returns.
type List []Item
