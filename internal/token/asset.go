package token

import (
	"math/big"
	"sync"
)

// Asset is a fungible governance token ledger with operator authorization:
// an owner grants an operator a spendable amount, and operator transfers
// consume that authorization. Voting weight and deposits are denominated in
// this asset.
type Asset struct {
	name   string
	symbol string

	mu             sync.RWMutex
	balances       map[string]*big.Int
	authorizations map[string]map[string]*big.Int
	totalSupply    *big.Int
}

func NewAsset(name, symbol string) *Asset {
	return &Asset{
		name:           name,
		symbol:         symbol,
		balances:       make(map[string]*big.Int),
		authorizations: make(map[string]map[string]*big.Int),
		totalSupply:    big.NewInt(0),
	}
}

func (a *Asset) Name() string {
	return a.name
}

func (a *Asset) Symbol() string {
	return a.symbol
}

// Mint credits newly issued tokens to an address.
func (a *Asset) Mint(to string, amount *big.Int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	balance, exists := a.balances[to]
	if !exists {
		balance = big.NewInt(0)
		a.balances[to] = balance
	}
	balance.Add(balance, amount)
	a.totalSupply.Add(a.totalSupply, amount)
}

// BalanceOf returns the balance of an address.
func (a *Asset) BalanceOf(address string) *big.Int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if balance, exists := a.balances[address]; exists {
		return new(big.Int).Set(balance)
	}
	return big.NewInt(0)
}

// TotalSupply returns the total supply of tokens.
func (a *Asset) TotalSupply() *big.Int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return new(big.Int).Set(a.totalSupply)
}

// AuthorizeOperator grants operator the right to move up to amount of
// owner's tokens. Replaces any previous authorization for the pair.
func (a *Asset) AuthorizeOperator(owner, operator string, amount *big.Int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	operators, exists := a.authorizations[owner]
	if !exists {
		operators = make(map[string]*big.Int)
		a.authorizations[owner] = operators
	}
	operators[operator] = new(big.Int).Set(amount)
}

// AuthorizedAmountFor returns the remaining amount operator may move on
// owner's behalf.
func (a *Asset) AuthorizedAmountFor(owner, operator string) *big.Int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if remaining, exists := a.authorizations[owner][operator]; exists {
		return new(big.Int).Set(remaining)
	}
	return big.NewInt(0)
}

// Transfer moves amount from one address to another. When the operator is
// not the owner of the funds, the transfer consumes the operator's
// authorization for that owner.
func (a *Asset) Transfer(operator, from, to string, amount *big.Int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var authorized *big.Int
	if operator != from {
		authorized = a.authorizations[from][operator]
		if authorized == nil || authorized.Cmp(amount) < 0 {
			return ErrInsufficientAuthorization
		}
	}

	fromBalance, exists := a.balances[from]
	if !exists || fromBalance.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}

	if authorized != nil {
		authorized.Sub(authorized, amount)
	}

	toBalance, exists := a.balances[to]
	if !exists {
		toBalance = big.NewInt(0)
		a.balances[to] = toBalance
	}
	fromBalance.Sub(fromBalance, amount)
	toBalance.Add(toBalance, amount)
	return nil
}
