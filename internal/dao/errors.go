package dao

import "errors"

var (
	// ErrNonPositiveAmount indicates a deposit or withdrawal of zero or less.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrInsufficientFreeBalance indicates a withdrawal above the free balance.
	ErrInsufficientFreeBalance = errors.New("amount exceeds free balance")

	// ErrWithdrawalLocked indicates the caller's last touched proposal's
	// voting window has not elapsed yet.
	ErrWithdrawalLocked = errors.New("withdrawal locked until voting window elapses")

	// ErrInsufficientDepositToPropose indicates the caller's free balance is
	// below the proposal creation threshold.
	ErrInsufficientDepositToPropose = errors.New("free balance below tokens required to create proposal")

	// ErrProposalNotFound indicates the proposal id does not exist.
	ErrProposalNotFound = errors.New("proposal not found")

	// ErrProposalNotPending indicates the proposal already reached a
	// terminal status.
	ErrProposalNotPending = errors.New("proposal must be pending")

	// ErrVotingClosed indicates a vote after the voting window elapsed.
	ErrVotingClosed = errors.New("voting window closed")

	// ErrVotingStillOpen indicates a finalize before the voting window elapsed.
	ErrVotingStillOpen = errors.New("voting window still open")

	// ErrAlreadyVoted indicates the address already voted on the proposal.
	ErrAlreadyVoted = errors.New("address already voted on proposal")

	// ErrNoFreeBalance indicates a vote with nothing deposited to weight it.
	ErrNoFreeBalance = errors.New("no free balance to vote with")

	// ErrCreateThresholdExceedsSupply indicates tokensToCreateProposal above
	// the governance token's total supply.
	ErrCreateThresholdExceedsSupply = errors.New("tokens to create proposal must be <= total supply")

	// ErrExecuteThresholdExceedsSupply indicates minTokensToExecuteProposal
	// above the governance token's total supply.
	ErrExecuteThresholdExceedsSupply = errors.New("min tokens to execute proposal must be <= total supply")

	// ErrMissingGovernanceToken indicates a deploy without a token ledger.
	ErrMissingGovernanceToken = errors.New("governance token is required")

	// ErrNonPositiveVotingPeriod indicates a deploy with no voting window.
	ErrNonPositiveVotingPeriod = errors.New("proposal time to vote must be positive")

	// ErrDaoNotFound indicates a lookup of an unknown manager address.
	ErrDaoNotFound = errors.New("dao not found")
)
