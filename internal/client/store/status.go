// Package store is the client's authoritative in-memory state: one Cache per
// entity kind plus the current Session.
//
// Every mutation publishes a fresh immutable Snapshot, so a consumer can keep
// the pointer it last rendered and compare it with Snapshot() to decide
// whether derived views need recomputing. Snapshots and their Items slices
// must never be modified in place.
//
// Mutators are called by the services package only; consumers see a Cache
// through the Reader interface.
package store

// LoadStatus is the lifecycle state of one collection.
//
//	Idle ─► Loading ─► Succeeded ─┐
//	           ▲   └──► Failed ───┤
//	           └──────────────────┘
//
// Idle is only the state before the first load.
type LoadStatus int

const (
	Idle LoadStatus = iota
	Loading
	Succeeded
	Failed
)

func (s LoadStatus) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no load is in flight.
func (s LoadStatus) Terminal() bool {
	return s == Succeeded || s == Failed
}
