// Package models contains GORM database models for infrastructure layer.
// These models handle database persistence and are separated from domain entities
// so that storage tags never leak into the domain packages.
package models
