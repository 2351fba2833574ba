package database_test

import (
	"context"
	"errors"
	"testing"

	"bookify/internal/database"
	"bookify/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   int64 `gorm:"primaryKey"`
	Text string
}

func TestWithinTxCommits(t *testing.T) {
	db := testutil.SQLite(t, &note{})
	tr := database.NewTransactor(db)
	ctx := context.Background()

	err := tr.WithinTx(ctx, func(ctx context.Context) error {
		return database.Conn(ctx, db).Create(&note{Text: "kept"}).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&note{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	db := testutil.SQLite(t, &note{})
	tr := database.NewTransactor(db)
	boom := errors.New("boom")

	err := tr.WithinTx(context.Background(), func(ctx context.Context) error {
		if err := database.Conn(ctx, db).Create(&note{Text: "dropped"}).Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, db.Model(&note{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestWithinTxNests(t *testing.T) {
	db := testutil.SQLite(t, &note{})
	tr := database.NewTransactor(db)

	err := tr.WithinTx(context.Background(), func(outer context.Context) error {
		return tr.WithinTx(outer, func(inner context.Context) error {
			return database.Conn(inner, db).Create(&note{Text: "nested"}).Error
		})
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&note{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDialect(t *testing.T) {
	db := testutil.SQLite(t)
	assert.Equal(t, database.DialectSQLite, database.Dialect(db))
}
