// Package devpanel serves a small HTTP debugging UI for a render target.
//
// The panel shows the target's current HTML, the previous and current
// trees side by side, and a live mutation log streamed over a websocket.
// Actions posted to the panel are forwarded to a Driver, which updates its
// state and re-renders.
//
// # Routes
//
//	GET  /                     HTML page
//	GET  /api/html             current target HTML
//	GET  /api/trees            previous and current tree dumps (JSON)
//	GET  /api/log              retained log entries, newest first
//	POST /api/actions/{action} dispatch an action, returns the new HTML
//	GET  /ws                   websocket stream of log entries
//	GET  /metrics              Prometheus metrics (when configured)
package devpanel
