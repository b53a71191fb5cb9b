package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Supported database types
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)

// DatabaseSettings describes how to reach the relational store.
// Name is only used for postgres, where the database is created on first connect.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	DSN  string `mapstructure:"dsn" validate:"required"`
	Name string `mapstructure:"name" validate:"required_if=Type postgres"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
