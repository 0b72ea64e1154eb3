// Package sanitizer provides input normalization and display formatting for
// registration and preference data.
//
// Every function here is total: invalid characters are dropped or reshaped,
// never rejected. Rejection is the validator's job.
//
// Normalization includes:
//   - Control characters: U+0000-U+001F and U+007F are removed
//   - Free text: runs of two or more whitespace characters collapse to one space (no trim)
//   - Emails: control characters removed, then trimmed, then lowercased
//   - Phones: digits only, (DDD) DDD-DDDD display mask, E.164 for storage
//   - Numbers: clamped to a closed range
package sanitizer
