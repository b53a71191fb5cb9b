// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer against SQLite or PostgreSQL and stores users,
// audio sessions with their acoustic metrics, training modules and community posts.
package persistence
