// Package state records API request outcomes for display.
//
// # Overview
//
// Searches and detail fetches run inside Bubble Tea commands, each on its own
// goroutine. The artic client reports every finished request to a Store
// (it implements artic.Observer) and the header reads a Snapshot on every
// render.
//
//	Producers (fetch commands):        Consumer (UI):
//	┌──────────────────────┐          ┌──────────────────┐
//	│ client.GetJSON()     │          │                  │
//	│      ↓               │          │                  │
//	│ store.RecordRequest()│─────────→│ store.Snapshot() │
//	│                      │ (mutex)  │      ↓           │
//	│                      │          │ render header    │
//	└──────────────────────┘          └──────────────────┘
//
// # Offline detection
//
// ConsecutiveFailures counts transport failures in a row. A response with a
// failing status (artic.HTTPError) resets it: the API answered, it just said
// no. IsOffline reports true from the second consecutive transport failure.
//
// # Concurrency Model
//
// Store uses a sync.RWMutex. Snapshot returns a value copy and clones the
// last error so callers never share the stored instance.
//
// Nothing in the store is domain data. Search results and artwork records
// live only in the view that fetched them.
package state
