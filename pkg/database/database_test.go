package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videoshare/pkg/models"
)

func TestOpenMigratesSchema(t *testing.T) {
	db, err := Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.HasTable(&models.User{}))
	assert.True(t, db.HasTable(&models.Video{}))
	assert.True(t, db.HasTable(&models.Comment{}))
	assert.True(t, db.HasTable(&models.Rating{}))
}

func TestOpenUnknownDialect(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.Error(t, err)
}
