package token

import (
	"math/big"
	"sync"
)

// System is the native currency ledger. DAO treasury accounts hold their
// balances here, separate from the governance asset.
type System struct {
	mu       sync.RWMutex
	balances map[string]*big.Int
}

func NewSystem() *System {
	return &System{
		balances: make(map[string]*big.Int),
	}
}

// Balance returns the native balance of an address.
func (s *System) Balance(address string) *big.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if balance, exists := s.balances[address]; exists {
		return new(big.Int).Set(balance)
	}
	return big.NewInt(0)
}

// Credit adds native currency to an address.
func (s *System) Credit(address string, amount *big.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance, exists := s.balances[address]
	if !exists {
		balance = big.NewInt(0)
		s.balances[address] = balance
	}
	balance.Add(balance, amount)
}

// Transfer moves native currency from one address to another.
func (s *System) Transfer(from, to string, amount *big.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fromBalance, exists := s.balances[from]
	if !exists || fromBalance.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}

	toBalance, exists := s.balances[to]
	if !exists {
		toBalance = big.NewInt(0)
		s.balances[to] = toBalance
	}
	fromBalance.Sub(fromBalance, amount)
	toBalance.Add(toBalance, amount)
	return nil
}
