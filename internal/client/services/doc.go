// Package services drives the synckeeper core: it issues remote calls
// through a client.Gateway and applies their outcomes to the store.
//
// CollectionService runs the load/reload lifecycle of one collection
// (sequence-numbered, so a superseded response is never applied) and the
// pessimistic create/update/delete protocol. AuthService is the session
// gate. Search binds a debounced query to a collection and a pagination
// window.
package services
