package config

import (
	"context"
	_ "embed"
	"fmt"

	"gorm.io/gorm"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the DDL applied by Migrate.
func Schema() string { return schemaSQL }

// Migrate creates the topics, users, articles and comments tables when missing.
// Existing tables are left untouched.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec(schemaSQL).Error; err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
