package domain

import "errors"

// Sentinel errors shared across the ledger. Handlers translate them to HTTP
// codes with errors.Is; none of them is fatal to the process.
var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrAccountNotFound        = errors.New("account not found")
	ErrAccountFrozen          = errors.New("account is frozen")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrDuplicateTransaction   = errors.New("duplicate transaction")
	ErrSameAccountTransfer    = errors.New("transfer to the same account")
	ErrBelowMinimum           = errors.New("amount below withdrawal minimum")
	ErrInvalidState           = errors.New("invalid state transition")
	ErrInvalidMethod          = errors.New("invalid withdrawal method")
	ErrInvalidPayoutDetails   = errors.New("invalid payout details")
	ErrWithdrawalNotFound     = errors.New("withdrawal request not found")
)
