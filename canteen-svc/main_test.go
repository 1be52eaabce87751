package main

import (
	"context"
	"testing"

	"canteen/canteen-svc/internal/storage"
	"canteen/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	identity, err := newIdentity(context.Background(), &config.Config{AuthProvider: "local"}, repo)
	require.NoError(t, err)
	assert.IsType(t, &storage.LocalIdentity{}, identity)

	_, err = newIdentity(context.Background(), &config.Config{AuthProvider: "ldap"}, repo)
	assert.EqualError(t, err, "unknown AUTH_PROVIDER: ldap")
}
