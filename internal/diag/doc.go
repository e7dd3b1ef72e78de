// Package diag defines the diagnostic model shared by every conversion phase.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced by
//     the lexer, the class extractor, the member parser and the emitter.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// # Scope
//
// Package diag does not format for terminals and performs no IO. Rendering
// lives in internal/diagfmt; collection per file and merging in discovery
// order lives in internal/driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning, Error.
//   - Code – compact numeric identifier with a stable string form (LEX1002, MEM3001).
//   - Message – short, actionable text.
//   - Primary – source.Span of the class or member the finding is about.
//   - Notes – optional secondary locations ("first declared here").
//
// Errors from the lexer or class extractor make the whole file a structural
// failure; warnings (members without the remote annotation) never affect the
// generated output.
package diag
