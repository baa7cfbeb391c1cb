// Package fleet tracks a fleet of boats and the expenses made on each of them
// against its purchase budget. It is designed to be local-first: the whole
// fleet lives in memory during a session and is persisted to a single file
// between sessions.
//
// The core functionalities include:
//   - Fleet Management: adding, finding and removing boats by name. Names are
//     matched ignoring case, and the first match wins.
//   - Budget Authorization: an expense is accepted only if it fits in the
//     remaining budget of the boat (purchase price minus previous expenses).
//   - Data Persistence: importing boats from a simple comma delimited format,
//     and saving and loading the full fleet state to and from a compressed
//     binary snapshot.
//
// This package serves as the foundational logic for the `fms` command-line
// tool.
package fleet
