package db

import (
	"context"
	"time"

	"github.com/relicvault/staking-ledger-service/internal/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultMaxAttempts    = 4 // max attempt INCLUDES the first execution
	DefaultInitialBackoff = 100 * time.Millisecond
	DefaultBackoffFactor  = 2
)

// DBTransactionClient abstracts session creation so the retry logic can be
// exercised against a fake session in tests.
type DBTransactionClient interface {
	StartSession(opts ...*options.SessionOptions) (DBSession, error)
}

type DBSession interface {
	WithTransaction(
		ctx context.Context,
		fn func(sessCtx mongo.SessionContext) (interface{}, error),
		opts ...*options.TransactionOptions,
	) (interface{}, error)
	EndSession(ctx context.Context)
}

type dbTransactionClient struct {
	*mongo.Client
}

type dbSessionWrapper struct {
	mongo.Session
}

func (c *dbTransactionClient) StartSession(opts ...*options.SessionOptions) (DBSession, error) {
	session, err := c.Client.StartSession(opts...)
	if err != nil {
		return nil, err
	}
	return &dbSessionWrapper{session}, nil
}

func (s *dbSessionWrapper) EndSession(ctx context.Context) {
	s.Session.EndSession(ctx)
}

func (s *dbSessionWrapper) WithTransaction(
	ctx context.Context,
	fn func(sessCtx mongo.SessionContext) (interface{}, error),
	opts ...*options.TransactionOptions,
) (interface{}, error) {
	return s.Session.WithTransaction(ctx, fn, opts...)
}

// TxWithRetries runs txnFunc inside a mongo transaction and retries transient
// failures with exponential backoff. Non-transient errors abort immediately.
func TxWithRetries(
	ctx context.Context,
	client DBTransactionClient,
	txnFunc func(sessCtx mongo.SessionContext) (interface{}, error),
) (interface{}, error) {
	var (
		result  interface{}
		err     error
		backoff = time.Duration(DefaultInitialBackoff)
	)

	for attempt := 1; attempt <= DefaultMaxAttempts; attempt++ {
		session, sessionErr := client.StartSession()
		if sessionErr != nil {
			return nil, sessionErr
		}

		result, err = session.WithTransaction(ctx, txnFunc)
		session.EndSession(ctx)

		if err != nil {
			if shouldRetry(err) && attempt < DefaultMaxAttempts {
				log.Ctx(ctx).Warn().Err(err).Int("attempt", attempt).
					Msgf("transaction failed with retryable error, retrying after %v", backoff)
				utils.Sleep(backoff)
				backoff *= DefaultBackoffFactor
				continue
			}
			return nil, err
		}
		break
	}
	return result, nil
}

func (db *Database) txWithRetries(
	ctx context.Context,
	txnFunc func(sessCtx mongo.SessionContext) (interface{}, error),
) (interface{}, error) {
	return TxWithRetries(ctx, &dbTransactionClient{db.Client}, txnFunc)
}

// Network and timeout errors, write conflicts and aborted transactions are
// transient and safe to retry. Anything else, duplicate keys included, is not.
func shouldRetry(err error) bool {
	if mongo.IsNetworkError(err) {
		return true
	}
	if mongo.IsTimeout(err) {
		return true
	}
	if IsWriteConflictError(err) {
		return true
	}
	if IsTransactionAbortedError(err) {
		return true
	}
	return false
}
