/*
Package domain contains the core domain models for the dockweave engine.

It defines the entities of the composition pipeline: Specifications and
their fragments, the merged Composition, and the secret Manifest used by
the wipe operation. This package is kept pure and free of external
dependencies like I/O or parsing, following Hexagonal Architecture
principles.

# Key Entities

  - Specification: A named bundle of Dockerfile fragments with declared
    includes, default values, and placeholders.
  - Composition: The merged, include-ordered instruction text with plain
    placeholders already substituted.
  - Manifest: The record of where credential values were injected, kept
    only long enough to support wiping.
*/
package domain
