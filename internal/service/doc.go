// Package service contains the application use cases. SyncService
// orchestrates the submission source and the tracked-entry store (both
// defined in internal/store) with the repetition-gap progression from
// internal/domain/srs.
//
// The service layer depends on domain types and store interfaces, never on
// the concrete LeetCode or Notion clients.
package service
