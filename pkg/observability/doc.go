/*
Package observability adapts grove engine hooks to monitoring backends.

It provides Prometheus collectors for ticks, passes, initializations and
active subjects, plus slog-based logging hooks for development. Both
yield a behavior.Hooks value; combine several consumers on one engine
with behavior.JoinHooks.
*/
package observability
