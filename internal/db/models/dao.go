package models

type Dao struct {
	Address     string `json:"address" pg:",pk"`
	Name        string `json:"name" pg:",notnull"`
	TokenSymbol string `json:"tokenSymbol" pg:"token_symbol,notnull"`
}
