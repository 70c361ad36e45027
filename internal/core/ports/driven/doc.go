// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - ShapeProvider: Sheet extent lookup, needed to resolve open-ended and
//     negative indices
//   - BatchWriter: Multi-range value write transport
//   - ValueReader: Single-range value read transport
//   - TokenProvider: Access tokens for authenticated API calls
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
