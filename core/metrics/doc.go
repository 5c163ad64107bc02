// Package metrics exposes Prometheus counters for widget conversions and host queries.
//
// Services receive a *Recorder and call Observe after every edit; a nil Recorder is
// accepted so that services can be built without metrics in tests and CLI commands.
// The start command mounts Handler at GET /metrics.
package metrics
