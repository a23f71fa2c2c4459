/*
Package behavior contains the node algebra of the grove engine.

It defines the Behavior contract (Initialize/Tick), the tri-state Status
nodes return, the leaf adapters that lift host functions into nodes, and
the decorators and composites that combine nodes into trees. This package
is kept pure and free of I/O, following Hexagonal Architecture
principles; trees built here are stored and driven by the engine and
observed through Hooks.

# Key Entities

  - Status: tri-state tick result (Success, Failure, Running).
  - Behavior: the node contract every tree element implements.
  - Func / Bool / Partial: leaf adapters over host functions.
  - Condition: initializable predicate used by conditional decorators.
  - Invert / RunIf / Retry / RetryWhile / Repeat / RepeatWhile: decorators.
  - Sequence / Select: composites with per-subject progress cursors.
  - TreeID / Assignment: handles naming stored trees and their subjects.
  - Hooks: lifecycle observation points (init, tick, pass).
*/
package behavior
