/*
Package domain contains the core domain models for the Tapir engine.

It defines the fundamental entities of a single-tape deterministic Turing
machine: the symbol Alphabet, head Moves, transition Rules, the keyed
transition Table, and the immutable Machine definition. This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - Alphabet: The fixed, ordered symbol set. Index 0 is the blank symbol.
  - Rule: One entry of the transition function, (state, read) -> (write, move, next).
  - Table: The total deterministic transition function, keyed by (state, symbol).
  - Machine: An immutable definition (state count, alphabet, table), safe to
    share read-only across concurrent evaluations.
  - Result: The outcome of running one tape to halt.
*/
package domain
