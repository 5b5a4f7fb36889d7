package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"mindspark/internal/config"
	"mindspark/internal/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Env: "development", Level: "info"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

func TestWithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		tm := NewTransactionManagerAdapter(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE user_profiles`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := tm.WithTransaction(ctx, func(txCtx context.Context) error {
			exec := GetExecutor(txCtx, db)
			_, err := exec.ExecContext(txCtx, `UPDATE user_profiles SET points = points + ? WHERE user_id = ?`, 10, "user-1")
			return err
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		tm := NewTransactionManagerAdapter(db)

		mock.ExpectBegin()
		mock.ExpectRollback()

		wantErr := errors.New("insert failed")
		err := tm.WithTransaction(ctx, func(txCtx context.Context) error {
			return wantErr
		})

		assert.ErrorIs(t, err, wantErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("executor falls back to db outside a transaction", func(t *testing.T) {
		db, _ := setupTestDB(t)
		defer db.Close()

		exec := GetExecutor(ctx, db)
		assert.Equal(t, DBTX(db), exec)
	})
}
