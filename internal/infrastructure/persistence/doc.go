// Package persistence provides the GORM-backed repository implementations
// and database connection management for the chat service.
package persistence
