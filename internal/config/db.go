package config

import (
	"fmt"
	"net/url"
	"strconv"
)

// Stats shards beyond this count buy nothing and hurt the read path, which
// has to sum every shard.
const logicalShardCap = 100

type DbConfig struct {
	DbName             string `mapstructure:"db-name"`
	Address            string `mapstructure:"address"`
	MaxPaginationLimit int64  `mapstructure:"max-pagination-limit"`
	LogicalShardCount  int64  `mapstructure:"logical-shard-count"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.DbName == "" {
		return fmt.Errorf("missing db name")
	}
	if err := validateMongoAddress(cfg.Address); err != nil {
		return err
	}

	if cfg.MaxPaginationLimit < 2 {
		return fmt.Errorf("max pagination limit must be greater than 1")
	}

	if cfg.LogicalShardCount <= 1 {
		return fmt.Errorf("logical shard count must be greater than 1")
	}
	if cfg.LogicalShardCount > logicalShardCap {
		return fmt.Errorf("logical shard count must not exceed %d", logicalShardCap)
	}

	return nil
}

func validateMongoAddress(address string) error {
	if address == "" {
		return fmt.Errorf("missing db address")
	}

	u, err := url.Parse(address)
	if err != nil {
		return fmt.Errorf("invalid db address: %w", err)
	}
	if u.Scheme != "mongodb" {
		return fmt.Errorf("unsupported db scheme: %s", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in db address")
	}
	if u.Port() == "" {
		return fmt.Errorf("missing port in db address")
	}

	port, err := strconv.Atoi(u.Port())
	if err != nil {
		return fmt.Errorf("invalid port in db address: %w", err)
	}
	if port < 1024 || port > 65535 {
		return fmt.Errorf("db port must be between 1024 and 65535")
	}
	return nil
}
