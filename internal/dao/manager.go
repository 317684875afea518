package dao

import (
	"fmt"
	"math/big"
	"sync"
	"time"
)

type voteKey struct {
	address    string
	proposalID uint64
}

// Manager is the DAO voting manager: one custody ledger, one proposal
// registry and the voting engine over them. All state mutation funnels
// through its methods under a single mutex, so every operation is atomic
// and totally ordered: it either completes fully or fails with no state
// change.
type Manager struct {
	config  Config
	address string
	account string
	native  NativeLedger
	caller  PayloadCaller

	mu         sync.RWMutex
	depositors map[string]*Depositor
	proposals  []*Proposal
	votes      map[voteKey]VoteChoice
	locks      map[uint64]map[string]*big.Int

	now func() time.Time
}

func newManager(config Config, address, account string, native NativeLedger, caller PayloadCaller) *Manager {
	return &Manager{
		config:     config,
		address:    address,
		account:    account,
		native:     native,
		caller:     caller,
		depositors: make(map[string]*Depositor),
		votes:      make(map[voteKey]VoteChoice),
		locks:      make(map[uint64]map[string]*big.Int),
		now:        time.Now,
	}
}

// Deposit pulls amount governance tokens from caller into the manager's
// custody and credits the caller's free balance. The caller must have
// authorized the manager as an operator on the token beforehand; token
// ledger failures are returned verbatim.
func (m *Manager) Deposit(caller string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.config.GovernanceToken.Transfer(m.address, caller, m.address, amount); err != nil {
		return err
	}

	depositor := m.depositor(caller)
	depositor.FreeBalance.Add(depositor.FreeBalance, amount)
	return nil
}

// Withdraw moves amount tokens from the caller's free balance back to the
// caller. It fails while the caller's most recent proposal participation
// voting window is still running.
func (m *Manager) Withdraw(caller string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	depositor, exists := m.depositors[caller]
	if !exists || depositor.FreeBalance.Cmp(amount) < 0 {
		return ErrInsufficientFreeBalance
	}
	if withdrawTime := m.possibleWithdrawTime(depositor); m.now().Before(withdrawTime) {
		return ErrWithdrawalLocked
	}

	if err := m.config.GovernanceToken.Transfer(m.address, m.address, caller, amount); err != nil {
		return err
	}

	depositor.FreeBalance.Sub(depositor.FreeBalance, amount)
	return nil
}

// PossibleWithdrawTime returns the earliest time the address can withdraw.
// An address that never created or voted on a proposal can withdraw
// immediately and gets the zero time.
func (m *Manager) PossibleWithdrawTime(address string) time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()

	depositor, exists := m.depositors[address]
	if !exists {
		return time.Time{}
	}
	return m.possibleWithdrawTime(depositor)
}

func (m *Manager) possibleWithdrawTime(depositor *Depositor) time.Time {
	if depositor.LastProposalCreatedAt.IsZero() {
		return time.Time{}
	}
	return depositor.LastProposalCreatedAt.Add(m.config.ProposalTimeToVote)
}

// CreateProposal appends a pending proposal and locks the creation stake
// from the caller's free balance. Creation counts as proposal participation
// for the withdrawal lock, but not as a cast vote.
func (m *Manager) CreateProposal(caller string, operation Operation, to string, value *big.Int, payload []byte) (Proposal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	depositor, exists := m.depositors[caller]
	if !exists || depositor.FreeBalance.Cmp(m.config.TokensToCreateProposal) < 0 {
		return Proposal{}, ErrInsufficientDepositToPropose
	}

	if value == nil {
		value = big.NewInt(0)
	}
	now := m.now()
	proposal := &Proposal{
		ID:        uint64(len(m.proposals)) + 1,
		CreatedBy: caller,
		CreatedAt: now,
		Operation: operation,
		To:        to,
		Value:     new(big.Int).Set(value),
		Payload:   append([]byte(nil), payload...),
		YesVotes:  big.NewInt(0),
		NoVotes:   big.NewInt(0),
		Status:    StatusPending,
	}
	m.proposals = append(m.proposals, proposal)

	m.lock(proposal.ID, caller, depositor, m.config.TokensToCreateProposal)
	depositor.LastProposalCreatedAt = now
	depositor.LastVotedProposalID = proposal.ID

	return snapshotProposal(proposal), nil
}

// Vote casts the caller's vote on a pending proposal, weighted by the
// caller's entire free balance at this moment. The weight moves to the
// locked balance until the proposal is finalized.
func (m *Manager) Vote(caller string, proposalID uint64, voteYes bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	proposal, err := m.proposal(proposalID)
	if err != nil {
		return err
	}
	if proposal.Status != StatusPending {
		return ErrProposalNotPending
	}
	if !m.now().Before(proposal.CreatedAt.Add(m.config.ProposalTimeToVote)) {
		return ErrVotingClosed
	}

	key := voteKey{address: caller, proposalID: proposalID}
	if m.votes[key] != VoteNone {
		return ErrAlreadyVoted
	}

	depositor, exists := m.depositors[caller]
	if !exists || depositor.FreeBalance.Sign() <= 0 {
		return ErrNoFreeBalance
	}

	weight := new(big.Int).Set(depositor.FreeBalance)
	if voteYes {
		proposal.YesVotes.Add(proposal.YesVotes, weight)
		m.votes[key] = VoteYes
	} else {
		proposal.NoVotes.Add(proposal.NoVotes, weight)
		m.votes[key] = VoteNo
	}

	m.lock(proposalID, caller, depositor, weight)
	depositor.LastProposalCreatedAt = proposal.CreatedAt
	depositor.LastVotedProposalID = proposalID

	return nil
}

// Finalize closes a pending proposal after its voting window elapsed. A
// proposal passes iff yes votes strictly exceed no votes and reach the
// execution threshold. Passed proposals execute their action; a failing
// action still commits as StatusExecutionFailed so that the unlocking of
// participant balances below always happens.
func (m *Manager) Finalize(proposalID uint64) (Proposal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	proposal, err := m.proposal(proposalID)
	if err != nil {
		return Proposal{}, err
	}
	if proposal.Status != StatusPending {
		return Proposal{}, ErrProposalNotPending
	}
	if m.now().Before(proposal.CreatedAt.Add(m.config.ProposalTimeToVote)) {
		return Proposal{}, ErrVotingStillOpen
	}

	passed := proposal.YesVotes.Cmp(proposal.NoVotes) > 0 &&
		proposal.YesVotes.Cmp(m.config.MinTokensToExecuteProposal) >= 0

	if !passed {
		proposal.Status = StatusFailed
	} else if err := m.execute(proposal); err != nil {
		proposal.Status = StatusExecutionFailed
	} else {
		proposal.Status = StatusExecuted
	}

	m.unlockAll(proposalID)

	return snapshotProposal(proposal), nil
}

func (m *Manager) execute(proposal *Proposal) error {
	switch proposal.Operation {
	case OperationTransfer:
		return m.native.Transfer(m.account, proposal.To, proposal.Value)
	case OperationCall:
		if m.caller == nil {
			return fmt.Errorf("no payload caller configured")
		}
		return m.caller.Call(proposal.To, proposal.Value, proposal.Payload)
	default:
		return fmt.Errorf("unknown operation %d", proposal.Operation)
	}
}

// lock moves amount from the depositor's free balance into the locked
// balance attributed to the proposal.
func (m *Manager) lock(proposalID uint64, address string, depositor *Depositor, amount *big.Int) {
	depositor.FreeBalance.Sub(depositor.FreeBalance, amount)
	depositor.LockedBalance.Add(depositor.LockedBalance, amount)

	locks := m.locks[proposalID]
	if locks == nil {
		locks = make(map[string]*big.Int)
		m.locks[proposalID] = locks
	}
	if held, ok := locks[address]; ok {
		held.Add(held, amount)
	} else {
		locks[address] = new(big.Int).Set(amount)
	}
}

// unlockAll releases every participant's lock tied to the proposal back to
// their free balance, with zero net change of free+locked per address.
func (m *Manager) unlockAll(proposalID uint64) {
	for address, amount := range m.locks[proposalID] {
		depositor := m.depositors[address]
		depositor.LockedBalance.Sub(depositor.LockedBalance, amount)
		depositor.FreeBalance.Add(depositor.FreeBalance, amount)
	}
	delete(m.locks, proposalID)
}

func (m *Manager) depositor(address string) *Depositor {
	depositor, exists := m.depositors[address]
	if !exists {
		depositor = &Depositor{
			FreeBalance:   big.NewInt(0),
			LockedBalance: big.NewInt(0),
		}
		m.depositors[address] = depositor
	}
	return depositor
}

func (m *Manager) proposal(proposalID uint64) (*Proposal, error) {
	if proposalID == 0 || proposalID > uint64(len(m.proposals)) {
		return nil, ErrProposalNotFound
	}
	return m.proposals[proposalID-1], nil
}

// Proposals returns the ordered proposal registry as value snapshots.
func (m *Manager) Proposals() []Proposal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	proposals := make([]Proposal, 0, len(m.proposals))
	for _, proposal := range m.proposals {
		proposals = append(proposals, snapshotProposal(proposal))
	}
	return proposals
}

// Proposal returns a snapshot of a single proposal.
func (m *Manager) Proposal(proposalID uint64) (Proposal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	proposal, err := m.proposal(proposalID)
	if err != nil {
		return Proposal{}, err
	}
	return snapshotProposal(proposal), nil
}

// VoteOf returns how the address voted on the proposal, or VoteNone.
func (m *Manager) VoteOf(address string, proposalID uint64) VoteChoice {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.votes[voteKey{address: address, proposalID: proposalID}]
}

// FreeBalanceOf returns the address' withdrawable custody balance.
func (m *Manager) FreeBalanceOf(address string) *big.Int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if depositor, exists := m.depositors[address]; exists {
		return new(big.Int).Set(depositor.FreeBalance)
	}
	return big.NewInt(0)
}

// LockedBalanceOf returns the address' proposal-locked custody balance.
func (m *Manager) LockedBalanceOf(address string) *big.Int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if depositor, exists := m.depositors[address]; exists {
		return new(big.Int).Set(depositor.LockedBalance)
	}
	return big.NewInt(0)
}

// LastVotedProposalID returns the id of the last proposal the address
// created or voted on, or zero.
func (m *Manager) LastVotedProposalID(address string) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if depositor, exists := m.depositors[address]; exists {
		return depositor.LastVotedProposalID
	}
	return 0
}

func (m *Manager) DaoName() string {
	return m.config.DaoName
}

func (m *Manager) GovernanceToken() AssetLedger {
	return m.config.GovernanceToken
}

func (m *Manager) TokensToCreateProposal() *big.Int {
	return new(big.Int).Set(m.config.TokensToCreateProposal)
}

func (m *Manager) MinTokensToExecuteProposal() *big.Int {
	return new(big.Int).Set(m.config.MinTokensToExecuteProposal)
}

func (m *Manager) ProposalTimeToVote() time.Duration {
	return m.config.ProposalTimeToVote
}

// Address is the manager's token custody address.
func (m *Manager) Address() string {
	return m.address
}

// Account is the DAO's native currency treasury account.
func (m *Manager) Account() string {
	return m.account
}

func snapshotProposal(proposal *Proposal) Proposal {
	snapshot := *proposal
	snapshot.Value = new(big.Int).Set(proposal.Value)
	snapshot.YesVotes = new(big.Int).Set(proposal.YesVotes)
	snapshot.NoVotes = new(big.Int).Set(proposal.NoVotes)
	snapshot.Payload = append([]byte(nil), proposal.Payload...)
	return snapshot
}
