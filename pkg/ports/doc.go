/*
Package ports defines the driven ports (interfaces) for the grove engine.

These interfaces decouple the core from external implementations,
allowing the engine to discover its active subjects from various
backends: an in-memory roster, Redis, or any host-specific query.

# Key Interfaces

  - SubjectSource: produces the (subject, tree) pairs to tick each pass.
  - Roster: a managed SubjectSource with assign/skip/remove bookkeeping.
*/
package ports
