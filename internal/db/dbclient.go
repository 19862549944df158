package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/relicvault/staking-ledger-service/internal/config"
)

type Database struct {
	DbName string
	Client *mongo.Client
	cfg    config.DbConfig
}

// DbResultMap carries one page of results. An empty PaginationToken means
// the last page was reached.
type DbResultMap[T any] struct {
	Data            []T    `json:"data"`
	PaginationToken string `json:"paginationToken"`
}

func New(ctx context.Context, cfg config.DbConfig) (*Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Address))
	if err != nil {
		return nil, err
	}

	return &Database{
		DbName: cfg.DbName,
		Client: client,
		cfg:    cfg,
	}, nil
}

func (db *Database) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, nil)
}

// toResultMapWithPaginationToken wraps a page of documents. A token is only
// built when the page came back full, a short page is by definition the last
// one.
func toResultMapWithPaginationToken[T any](
	cfg config.DbConfig, result []T, paginationKeyBuilder func(T) (string, error),
) (*DbResultMap[T], error) {
	if len(result) == 0 || len(result) < int(cfg.MaxPaginationLimit) {
		return &DbResultMap[T]{Data: result}, nil
	}

	paginationToken, err := paginationKeyBuilder(result[len(result)-1])
	if err != nil {
		return nil, err
	}
	return &DbResultMap[T]{
		Data:            result,
		PaginationToken: paginationToken,
	}, nil
}
