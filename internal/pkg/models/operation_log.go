package models

import "time"

// LoanOperationLog is the structured per-operation summary line emitted once
// an engine command finishes, successful or not.
type LoanOperationLog struct {
	Operation     string    `json:"operation"`
	Status        string    `json:"status"`
	LoanId        string    `json:"loanId,omitempty"`
	MemberId      string    `json:"memberId,omitempty"`
	TransactionID string    `json:"transactionId"`
	TAT           float64   `json:"tat"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	ErrorCode     string    `json:"errorCode,omitempty"`
}
