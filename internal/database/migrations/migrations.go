// Package migrations содержит SQL-миграции схемы для PostgreSQL.
// Для sqlite схема создается через gorm AutoMigrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
