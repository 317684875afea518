package configs

import "time"

type Finalizer struct {
	SweepInterval time.Duration `env:"FINALIZER_SWEEP_INTERVAL" envDefault:"1m"`
}
