// Package token defines lexical token kinds and trivia for Apex sources.
// Invariants:
//   - Token.Text is the exact source spelling (keywords keep their case).
//   - Token.Span matches Text exactly (Start..End).
//   - Comments never appear in the main token stream; they are attached to the
//     following token as Leading trivia. Documentation comments (/** ... */)
//     use TriviaDocBlock so callers can find the doc comment preceding a declaration.
//   - Keywords are case-insensitive, as in Apex.
//   - '>' is always a single Gt token; nested generics close one bracket at a time.
//   - Annotations are lexed as '@' (Kind: At) + Ident; no per-annotation token kinds.
package token
