package models

import "time"

// LedgerEvent is the append-only record published to the kafka ledger topic on
// every loan state change and payment. Downstream bookkeeping and the nightly
// snapshot job consume it; the engine never reads it back.
type LedgerEvent struct {
	EventId       string    `json:"eventId"`
	EventType     string    `json:"eventType"`
	LoanId        string    `json:"loanId"`
	MemberId      string    `json:"memberId"`
	Amount        string    `json:"amount,omitempty"`
	Balance       string    `json:"balance"`
	TotalPaid     string    `json:"totalPaid"`
	LoanStatus    string    `json:"loanStatus"`
	ActingUserId  string    `json:"actingUserId"`
	EventDatetime time.Time `json:"eventDatetime"`
}
