package dto

import "time"

type WithdrawalRequestDTO struct {
	Amount        float64 `json:"amount" example:"25"`
	Method        string  `json:"method" example:"paypal"`
	PayoutDetails string  `json:"payout_details" example:"user@example.com"`
}

type WithdrawalResponseDTO struct {
	ID              string     `json:"id" example:"1f0f54a8-20cc-4d4b-b03b-2f5a6c70f9b1"`
	AccountID       string     `json:"account_id" example:"tg:100500"`
	Amount          float64    `json:"amount" example:"25"`
	USDValue        float64    `json:"usd_value" example:"25"`
	Method          string     `json:"method" example:"paypal"`
	Status          string     `json:"status" example:"pending"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	ProcessedBy     string     `json:"processed_by,omitempty" example:"42"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at" example:"2024-11-02T16:09:57+03:00"`
}

type RejectWithdrawalRequestDTO struct {
	Reason string `json:"reason" example:"payout details rejected by the gateway"`
}

type FreezeRequestDTO struct {
	Reason string `json:"reason" example:"fraud investigation"`
}

type AdjustmentRequestDTO struct {
	Amount      float64 `json:"amount" example:"5"`
	Description string  `json:"description" example:"support compensation"`
}
