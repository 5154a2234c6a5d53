// Package domain contains the core entities of the sync: the submissions
// reported by the problem source, the problem metadata, and the entries
// tracked in the spaced-repetition database. It is independent of either
// remote API.
package domain
