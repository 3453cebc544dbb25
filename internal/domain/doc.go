// Package domain contains the core value types shared by the dieroll packages.
//
// It has no dependencies on infrastructure concerns (terminal output, files,
// logging) and holds only the token model and its error conditions.
//
// # Entities
//
//   - [Token]: the classification of one input string
//   - [Spec]: a validated request to roll Count dice of Sides faces
//   - [Invalid]: an input that is not dice notation
package domain
