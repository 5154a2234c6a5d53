// Package store defines the interfaces the sync reads problems from and
// writes tracked entries to. Implementations live under internal/platform.
package store
