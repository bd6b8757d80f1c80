/*
Package ports defines the driven ports (interfaces) for the dockweave engine.

These interfaces decouple the composition pipeline from external
implementations, allowing the engine to work with different specification
sources and credential inputs.

# Key Interfaces

  - Store: Responsible for resolving named specifications (filesystem
    search path, embedded defaults, or memory).
  - Prompter: Responsible for obtaining credential values for secret
    placeholders (interactive terminal, or a stub in tests).
*/
package ports
