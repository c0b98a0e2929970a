// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/pkg/auth"
)

// NewDB opens an isolated in-memory sqlite database with foreign keys on and migrates models.
// The pool is capped at one connection so concurrent transactions serialize like row locks would.
func NewDB(t testing.TB, models ...any) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if len(models) > 0 {
		require.NoError(t, db.AutoMigrate(models...))
	}
	return db
}

// WithPrincipal returns a context authenticated as ref
func WithPrincipal(ctx context.Context, ref string) context.Context {
	return auth.ContextWithPrincipal(ctx, &auth.Principal{ExternalRef: ref})
}

// SeedUser stores a user record for ref with role
func SeedUser(t testing.TB, db *gorm.DB, ref string, role identity.Role) *identity.User {
	t.Helper()

	u := &identity.User{
		ExternalRef: ref,
		Username:    ref,
		Name:        ref,
		Email:       ref + "@example.com",
		Role:        role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}
