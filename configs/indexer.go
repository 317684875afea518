package configs

import "time"

type Indexer struct {
	ResolveAttempts   int           `env:"INDEXER_RESOLVE_ATTEMPTS" envDefault:"20"`
	ResolveRetryDelay time.Duration `env:"INDEXER_RESOLVE_RETRY_DELAY" envDefault:"1s"`
}
