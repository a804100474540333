package domain

import "time"

// Currency is the only unit the ledger accounts in. BOM is pegged 1:1 to USD
// for display purposes.
const Currency = "BOM"

type TransactionType string

const (
	TypeDeposit         TransactionType = "deposit"
	TypeWithdrawal      TransactionType = "withdrawal"
	TypeTransfer        TransactionType = "transfer"
	TypeSubscription    TransactionType = "subscription"
	TypeDonation        TransactionType = "donation"
	TypeAdRevenue       TransactionType = "ad_revenue"
	TypeReward          TransactionType = "reward"
	TypeAdminAdjustment TransactionType = "admin_adjustment"
	TypeAdminDeduction  TransactionType = "admin_deduction"
	TypeAdminAction     TransactionType = "admin_action"
	TypeFee             TransactionType = "fee"
	TypeRefund          TransactionType = "refund"
)

// TransactionTypes is the closed set accepted by the engine. The same set is
// enforced as a CHECK constraint on the transactions table.
var TransactionTypes = map[TransactionType]struct{}{
	TypeDeposit:         {},
	TypeWithdrawal:      {},
	TypeTransfer:        {},
	TypeSubscription:    {},
	TypeDonation:        {},
	TypeAdRevenue:       {},
	TypeReward:          {},
	TypeAdminAdjustment: {},
	TypeAdminDeduction:  {},
	TypeAdminAction:     {},
	TypeFee:             {},
	TypeRefund:          {},
}

func (t TransactionType) Valid() bool {
	_, ok := TransactionTypes[t]
	return ok
}

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
	StatusCancelled TransactionStatus = "cancelled"
)

// Terminal reports whether the status admits no further transition.
func (s TransactionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

type Account struct {
	ID           string    `db:"id"`
	Balance      int64     `db:"balance"`
	Currency     string    `db:"currency"`
	Frozen       bool      `db:"frozen"`
	FreezeReason string    `db:"freeze_reason"`
	CreatedAt    time.Time `db:"created_at"`
}

type Transaction struct {
	ID                   string            `db:"id"`
	AccountID            string            `db:"account_id"`
	Type                 TransactionType   `db:"type"`
	Amount               int64             `db:"amount"`
	Currency             string            `db:"currency"`
	Description          string            `db:"description"`
	Status               TransactionStatus `db:"status"`
	RelatedTransactionID *string           `db:"related_transaction_id"`
	CreatedAt            time.Time         `db:"created_at"`
}

type WithdrawalMethod string

const (
	MethodPaypal       WithdrawalMethod = "paypal"
	MethodBankTransfer WithdrawalMethod = "bank_transfer"
	MethodCrypto       WithdrawalMethod = "crypto"
	MethodOther        WithdrawalMethod = "other"
)

func (m WithdrawalMethod) Valid() bool {
	switch m {
	case MethodPaypal, MethodBankTransfer, MethodCrypto, MethodOther:
		return true
	}
	return false
}

type WithdrawalStatus string

const (
	WithdrawalPending    WithdrawalStatus = "pending"
	WithdrawalProcessing WithdrawalStatus = "processing"
	WithdrawalCompleted  WithdrawalStatus = "completed"
	WithdrawalRejected   WithdrawalStatus = "rejected"
	WithdrawalCancelled  WithdrawalStatus = "cancelled"
)

func (s WithdrawalStatus) Terminal() bool {
	return s == WithdrawalCompleted || s == WithdrawalRejected || s == WithdrawalCancelled
}

type WithdrawalRequest struct {
	ID              string           `db:"id"`
	AccountID       string           `db:"account_id"`
	Amount          int64            `db:"amount"`
	USDValue        int64            `db:"usd_value"`
	Method          WithdrawalMethod `db:"method"`
	PayoutDetails   string           `db:"payout_details"`
	Status          WithdrawalStatus `db:"status"`
	RejectionReason string           `db:"rejection_reason"`
	ProcessedBy     string           `db:"processed_by"`
	ProcessedAt     *time.Time       `db:"processed_at"`
	TransactionID   string           `db:"transaction_id"`
	CreatedAt       time.Time        `db:"created_at"`
	UpdatedAt       time.Time        `db:"updated_at"`
}

type Admin struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// TransactionFilter narrows transaction listings. Zero values mean "any".
type TransactionFilter struct {
	Type   TransactionType
	Status TransactionStatus
	Limit  int
}
