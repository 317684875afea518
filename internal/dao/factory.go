package dao

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

// Deployment is the signal emitted for every newly deployed DAO. The
// indexing backend consumes it to discover and persist new DAOs without
// scraping logs.
type Deployment struct {
	Address string
	Account string
	DaoName string
}

// Factory deploys DAO voting managers and keeps a registry of them, keyed
// by the manager's custody address.
type Factory struct {
	native NativeLedger
	caller PayloadCaller

	mu          sync.RWMutex
	managers    map[string]*Manager
	deployments chan Deployment
}

func NewFactory(native NativeLedger, caller PayloadCaller) *Factory {
	return &Factory{
		native:      native,
		caller:      caller,
		managers:    make(map[string]*Manager),
		deployments: make(chan Deployment, 128),
	}
}

// Deploy validates the configuration against the governance token's total
// supply, creates the manager with fresh custody and treasury addresses,
// registers it and announces the deployment.
func (f *Factory) Deploy(config Config) (*Manager, error) {
	if config.GovernanceToken == nil {
		return nil, ErrMissingGovernanceToken
	}
	if config.ProposalTimeToVote <= 0 {
		return nil, ErrNonPositiveVotingPeriod
	}

	totalSupply := config.GovernanceToken.TotalSupply()
	if config.TokensToCreateProposal == nil || config.TokensToCreateProposal.Cmp(totalSupply) > 0 {
		return nil, ErrCreateThresholdExceedsSupply
	}
	if config.MinTokensToExecuteProposal == nil || config.MinTokensToExecuteProposal.Cmp(totalSupply) > 0 {
		return nil, ErrExecuteThresholdExceedsSupply
	}

	address, err := generateAddress()
	if err != nil {
		return nil, err
	}
	account, err := generateAddress()
	if err != nil {
		return nil, err
	}

	manager := newManager(config, address, account, f.native, f.caller)

	f.mu.Lock()
	f.managers[address] = manager
	f.mu.Unlock()

	// Slow consumers miss deployments instead of blocking deploys.
	select {
	case f.deployments <- Deployment{Address: address, Account: account, DaoName: config.DaoName}:
	default:
	}

	return manager, nil
}

// Deployments is the stream of deployment announcements.
func (f *Factory) Deployments() <-chan Deployment {
	return f.deployments
}

// Manager returns the deployed manager at the address.
func (f *Factory) Manager(address string) (*Manager, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	manager, exists := f.managers[address]
	if !exists {
		return nil, ErrDaoNotFound
	}
	return manager, nil
}

// Managers returns every deployed manager.
func (f *Factory) Managers() []*Manager {
	f.mu.RLock()
	defer f.mu.RUnlock()

	managers := make([]*Manager, 0, len(f.managers))
	for _, manager := range f.managers {
		managers = append(managers, manager)
	}
	return managers
}

func generateAddress() (string, error) {
	bytes := make([]byte, 20)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate address: %w", err)
	}
	return "0x" + hex.EncodeToString(bytes), nil
}
