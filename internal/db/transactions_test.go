package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/relicvault/staking-ledger-service/internal/db"
	"github.com/relicvault/staking-ledger-service/internal/utils"
	"github.com/relicvault/staking-ledger-service/tests/mocks"
)

// Mongo server error codes, see
// https://www.mongodb.com/docs/manual/reference/error-codes/
const (
	writeConflictCode      = 112
	transactionAbortedCode = 251
)

func writeConflictError() mongo.CommandError {
	return mongo.CommandError{
		Code:    writeConflictCode,
		Message: "write conflict",
		Name:    "WriteConflict",
	}
}

// captureSleeps swaps the retry sleep for a recorder so tests run instantly.
func captureSleeps(t *testing.T) *[]time.Duration {
	t.Helper()
	var durations []time.Duration
	utils.SetSleepFunc(func(d time.Duration) {
		durations = append(durations, d)
	})
	t.Cleanup(utils.ResetSleepFunc)
	return &durations
}

func TestTxWithRetriesBacksOffExponentially(t *testing.T) {
	client := new(mocks.DBTransactionClient)
	session := new(mocks.DBSession)
	client.On("StartSession").Return(session, nil)
	session.On("WithTransaction", mock.Anything, mock.Anything).
		Return(nil, writeConflictError()).Twice()
	session.On("WithTransaction", mock.Anything, mock.Anything).
		Return("done", nil).Once()
	session.On("EndSession", mock.Anything).Return()
	sleeps := captureSleeps(t)

	result, err := db.TxWithRetries(context.Background(), client,
		func(sessCtx mongo.SessionContext) (interface{}, error) {
			return "done", nil
		})

	require.NoError(t, err)
	require.Equal(t, "done", result)
	require.Equal(t, []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
	}, *sleeps)
	session.AssertNumberOfCalls(t, "EndSession", 3)
}

func TestTxWithRetriesExhaustsAttempts(t *testing.T) {
	client := new(mocks.DBTransactionClient)
	session := new(mocks.DBSession)
	client.On("StartSession").Return(session, nil)
	session.On("WithTransaction", mock.Anything, mock.Anything).
		Return(nil, writeConflictError())
	session.On("EndSession", mock.Anything).Return()
	sleeps := captureSleeps(t)

	result, err := db.TxWithRetries(context.Background(), client,
		func(sessCtx mongo.SessionContext) (interface{}, error) {
			return nil, writeConflictError()
		})

	require.Error(t, err)
	require.Nil(t, result)
	// The final attempt fails without another backoff.
	require.Len(t, *sleeps, db.DefaultMaxAttempts-1)
	session.AssertNumberOfCalls(t, "WithTransaction", db.DefaultMaxAttempts)
}

func TestTxWithRetriesDoesNotRetryNonTransientError(t *testing.T) {
	client := new(mocks.DBTransactionClient)
	session := new(mocks.DBSession)
	duplicateKey := &db.DuplicateKeyError{Key: "42", Message: "asset is already staked"}
	client.On("StartSession").Return(session, nil)
	session.On("WithTransaction", mock.Anything, mock.Anything).
		Return(nil, duplicateKey)
	session.On("EndSession", mock.Anything).Return()
	sleeps := captureSleeps(t)

	result, err := db.TxWithRetries(context.Background(), client,
		func(sessCtx mongo.SessionContext) (interface{}, error) {
			return nil, duplicateKey
		})

	require.Error(t, err)
	require.True(t, db.IsDuplicateKeyError(err))
	require.Nil(t, result)
	require.Empty(t, *sleeps)
	session.AssertNumberOfCalls(t, "WithTransaction", 1)
}

func TestTxWithRetriesRetriesAbortedTransaction(t *testing.T) {
	client := new(mocks.DBTransactionClient)
	session := new(mocks.DBSession)
	aborted := mongo.CommandError{
		Code:    transactionAbortedCode,
		Message: "transaction aborted",
		Name:    "NoSuchTransaction",
	}
	client.On("StartSession").Return(session, nil)
	session.On("WithTransaction", mock.Anything, mock.Anything).
		Return(nil, aborted).Once()
	session.On("WithTransaction", mock.Anything, mock.Anything).
		Return("done", nil).Once()
	session.On("EndSession", mock.Anything).Return()
	sleeps := captureSleeps(t)

	result, err := db.TxWithRetries(context.Background(), client,
		func(sessCtx mongo.SessionContext) (interface{}, error) {
			return "done", nil
		})

	require.NoError(t, err)
	require.Equal(t, "done", result)
	require.Len(t, *sleeps, 1)
}

func TestTxWithRetriesStartSessionFailure(t *testing.T) {
	client := new(mocks.DBTransactionClient)
	sessionErr := errors.New("topology closed")
	client.On("StartSession").Return(nil, sessionErr)

	result, err := db.TxWithRetries(context.Background(), client,
		func(sessCtx mongo.SessionContext) (interface{}, error) {
			return "unreachable", nil
		})

	require.ErrorIs(t, err, sessionErr)
	require.Nil(t, result)
}
