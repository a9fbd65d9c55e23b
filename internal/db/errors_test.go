package db

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestIsNoRows(t *testing.T) {
	assert.False(t, IsNoRows(nil))
	assert.True(t, IsNoRows(ErrNoRows))
	assert.True(t, IsNoRows(sql.ErrNoRows))
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("lookup: %w", ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("connection refused")))
}

func TestHashText(t *testing.T) {
	a := HashText("the boy")
	assert.Len(t, a, 64)
	assert.Equal(t, a, HashText("the boy"))
	assert.NotEqual(t, a, HashText("the boy "))
}
