// Package app is the composition root for artsearch.
//
// # Overview
//
// Run wires configuration, logging, the API client, the request store and
// the UI, then blocks in the Bubble Tea program until the user quits or the
// context is cancelled.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()       Read config, apply flag overrides
//	       ├─────> initLogger()        logrus to the log file
//	       ├─────> prefs.Load()        Theme (falls back to defaults)
//	       ├─────> state.Store{}       Request outcomes for the header
//	       ├─────> artic.NewClient()   Observer = store
//	       └─────> ui.Run()            Start TUI (blocks)
//
// # Error Handling
//
// Fatal errors are returned from Run: an unreadable or invalid config file,
// an unknown --log-level, a log file that cannot be opened, or an invalid
// API base URL. A bad prefs file is logged and ignored. Request failures are
// never fatal; the views render them in place.
package app
