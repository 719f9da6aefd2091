// Package token defines lexical tokens of the Hylo language.
// Invariants:
//   - Every token produced by the lexer is wrapped in a Container whose Span
//     covers the source characters it was read from (inclusive on both ends).
//   - String tokens hold the text between the quotes; the span includes both quotes.
//   - The only recognized keywords are the boolean literals true and false;
//     every other word is a Word token.
package token
