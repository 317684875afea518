package configs

type Logger struct {
	AppName string `env:"APP_NAME" envDefault:"dao_voting_platform"`
	URL     string `env:"LOKI_URL"`
}
