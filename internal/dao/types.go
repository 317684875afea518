package dao

import (
	"math/big"
	"time"
)

// ProposalStatus captures a proposal's lifecycle. Every status except
// StatusPending is terminal.
type ProposalStatus int

const (
	StatusPending ProposalStatus = iota
	StatusExecuted
	StatusExecutionFailed
	StatusFailed
)

func (s ProposalStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusExecuted:
		return "executed"
	case StatusExecutionFailed:
		return "execution failed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Operation selects what Finalize does with a passed proposal.
type Operation int

const (
	// OperationTransfer moves native currency from the DAO treasury account
	// to the proposal's target.
	OperationTransfer Operation = iota

	// OperationCall invokes the proposal's payload against the target
	// through the configured PayloadCaller.
	OperationCall
)

// VoteChoice records which way an address voted on a proposal.
type VoteChoice int

const (
	VoteNone VoteChoice = iota
	VoteYes
	VoteNo
)

func (v VoteChoice) String() string {
	switch v {
	case VoteYes:
		return "yes"
	case VoteNo:
		return "no"
	default:
		return "none"
	}
}

// Proposal is an entry in the append-only proposal registry. IDs are
// sequential starting at 1 and never reused.
type Proposal struct {
	ID        uint64
	CreatedBy string
	CreatedAt time.Time
	Operation Operation
	To        string
	Value     *big.Int
	Payload   []byte
	YesVotes  *big.Int
	NoVotes   *big.Int
	Status    ProposalStatus
}

// Depositor holds an address' custody balances. FreeBalance is withdrawable,
// LockedBalance backs an open proposal or vote. The sum only changes through
// Deposit and Withdraw.
type Depositor struct {
	FreeBalance           *big.Int
	LockedBalance         *big.Int
	LastProposalCreatedAt time.Time
	LastVotedProposalID   uint64
}

// AssetLedger is the slice of the governance token the manager consumes. The
// manager trusts the token's accounting and surfaces its failures verbatim.
type AssetLedger interface {
	Transfer(operator, from, to string, amount *big.Int) error
	BalanceOf(address string) *big.Int
	TotalSupply() *big.Int
	Name() string
	Symbol() string
}

// NativeLedger moves native currency between accounts. The DAO treasury
// account lives on it.
type NativeLedger interface {
	Transfer(from, to string, amount *big.Int) error
	Balance(address string) *big.Int
}

// PayloadCaller executes OperationCall payloads against their target. A
// failed call marks the proposal StatusExecutionFailed instead of aborting
// the finalize operation.
type PayloadCaller interface {
	Call(to string, value *big.Int, payload []byte) error
}

// Config is the immutable configuration of a DAO voting manager.
type Config struct {
	DaoName                    string
	GovernanceToken            AssetLedger
	TokensToCreateProposal     *big.Int
	MinTokensToExecuteProposal *big.Int
	ProposalTimeToVote         time.Duration
}
