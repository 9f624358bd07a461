package planner

// WaypointList is an ordered, index-addressed sequence of waypoints being
// assembled for a single planning session. It is not safe for concurrent
// use; each session owns its own list.
type WaypointList struct {
	items []Waypoint
}

// NewWaypointList creates a waypoint list seeded with the given waypoints.
func NewWaypointList(waypoints ...Waypoint) *WaypointList {
	items := make([]Waypoint, len(waypoints))
	copy(items, waypoints)
	return &WaypointList{items: items}
}

// Len returns the number of waypoints in the list.
func (l *WaypointList) Len() int {
	return len(l.items)
}

// Append adds a waypoint to the end of the list.
func (l *WaypointList) Append(w Waypoint) {
	l.items = append(l.items, w)
}

// Reposition moves the waypoint at from to the position to, as a single
// remove-then-reinsert. This matches drag-and-drop semantics: when source
// and destination straddle other entries the result differs from a swap.
// Out-of-bounds indices are a no-op, mirroring a cancelled drag gesture.
func (l *WaypointList) Reposition(from, to int) {
	if from < 0 || from >= len(l.items) || to < 0 || to >= len(l.items) || from == to {
		return
	}

	moved := l.items[from]
	l.items = append(l.items[:from], l.items[from+1:]...)

	// Reinsert into the already-shortened sequence.
	l.items = append(l.items, Waypoint{})
	copy(l.items[to+1:], l.items[to:])
	l.items[to] = moved
}

// At returns the waypoint at index i.
func (l *WaypointList) At(i int) Waypoint {
	return l.items[i]
}

// Waypoints returns a copy of the ordered waypoint sequence.
func (l *WaypointList) Waypoints() []Waypoint {
	out := make([]Waypoint, len(l.items))
	copy(out, l.items)
	return out
}
