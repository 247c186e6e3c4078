// Package view holds the search and detail state machines and the node tree
// they render into.
//
// Views never touch the terminal. Each one owns a Container and fills it with
// Nodes built by El; the ui package paints whatever a container holds. This
// keeps the request/render cycle testable without a running program.
//
// # Search cycle
//
//	Idle ──Submit──> Submitting ──Run: [slow] delay, [error] fail, fetch──> Complete ──> Idle | Failed
//
// Submit and Complete are called on the UI goroutine; Run blocks and is
// called from a command goroutine. Every accepted Submit bumps a sequence
// number and Complete ignores any result whose sequence is not the latest,
// so a newer search always wins regardless of completion order.
//
// # Detail cycle
//
//	Loading ──Run──> Complete ──> Rendered | NotFound | Failed
//
// # Optional fields
//
// Record fields pass through Field or Or. Blank values never reach the tree
// as empty elements; they become placeholders or are left out.
package view
