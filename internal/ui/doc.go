// Package ui provides the Bubble Tea terminal interface for artsearch.
//
// # Architecture Overview
//
// The Model hosts exactly one page view at a time, either a view.Search or
// a view.Detail, and paints the view's node container into a scrolling
// viewport. The views own all page semantics (what is shown while loading,
// on failure, on empty results); this package owns keys, focus, layout and
// navigation.
//
// # Package Structure
//
//   - app.go: Model, Update/View loop, global keys and Run
//   - navigation.go: the bootstrapper (activate), link following and fetch commands
//   - form.go: search form focus ring, checkboxes and submission
//   - render.go: node tree painter
//   - header.go: status bar and command bar
//   - logs.go: activity log overlay
//   - help.go, keys.go: key bindings and help overlay
//   - theme.go, style_helpers.go: themes and background-safe rendering
//
// # Navigation
//
// Every location change, including the first, goes through activate: an id
// opens the detail view and starts its fetch; otherwise the search view opens
// with the query field seeded and not submitted. Following a result link or
// the back link parses its href and calls activate again.
//
// # Event Flow
//
//  1. New activates the initial location; Init starts the spinner and ticks
//  2. Enter submits the form; the search view accepts it and a tea.Cmd runs
//     the simulated conditions and the fetch off the UI goroutine
//  3. The result message is checked against the view generation and then the
//     search sequence; stale results are logged at debug level and dropped
//  4. The view renders into its container and the painter repaints
//
// # Key Bindings
//
//   - tab / shift+tab: Move between query, checkboxes, button and results
//   - enter: Submit the form, or open the selected link
//   - space: Toggle the focused checkbox
//   - /: Edit the query
//   - j/k, g/G: Select links
//   - esc or b: Back to search (detail view)
//   - L: Activity log, T: Cycle theme, h/?: Help
//   - e or Ctrl+C: Exit
package ui
