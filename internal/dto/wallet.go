package dto

import "time"

type WalletResponseDTO struct {
	AccountID string  `json:"account_id" example:"tg:100500"`
	Balance   float64 `json:"balance" example:"125.5"`
	Currency  string  `json:"currency" example:"BOM"`
	Frozen    bool    `json:"frozen" example:"false"`
}

type BalanceResponseDTO struct {
	Balance  float64 `json:"balance" example:"125.5"`
	Currency string  `json:"currency" example:"BOM"`
}

type DepositRequestDTO struct {
	Amount      float64 `json:"amount" example:"25.5"`
	Description string  `json:"description" example:"subscription payout"`
}

type TransferRequestDTO struct {
	To          string  `json:"to" example:"tg:200600"`
	Amount      float64 `json:"amount" example:"10"`
	Description string  `json:"description" example:"donation"`
}

type TransactionResponseDTO struct {
	ID          string    `json:"id" example:"7d8f3a52-9a91-4f0a-b7b4-6f4ba2f0c001"`
	Type        string    `json:"type" example:"deposit"`
	Amount      float64   `json:"amount" example:"25.5"`
	Currency    string    `json:"currency" example:"BOM"`
	Description string    `json:"description,omitempty" example:"subscription payout"`
	Status      string    `json:"status" example:"completed"`
	RelatedID   string    `json:"related_id,omitempty" example:"b1a9c9e4-543c-4f3b-8f2e-9a0d5b7f1234"`
	CreatedAt   time.Time `json:"created_at" example:"2024-11-02T16:09:57+03:00"`
}

type TransferResponseDTO struct {
	Debit  TransactionResponseDTO `json:"debit"`
	Credit TransactionResponseDTO `json:"credit"`
}
