package models

type CreateLoanRequest struct {
	MemberId        string  `json:"memberId" binding:"required"`
	Program         string  `json:"program" binding:"required,oneof=small_loan big_loan"`
	Principal       string  `json:"principal" binding:"required"`
	TermWeeks       int     `json:"termWeeks" binding:"required,gt=0"`
	InstallmentType string  `json:"installmentType" binding:"omitempty,oneof=weekly end_of_term"`
	OfficerId       string  `json:"officerId" binding:"required"`
	BranchId        string  `json:"branchId" binding:"required"`
	ActingUserId    string  `json:"actingUserId" binding:"required"`
	ActingUserRole  string  `json:"actingUserRole" binding:"required"`
	InterestRate    float64 `json:"interestRate" binding:"omitempty,gte=0"`
}

type ApproveLoanRequest struct {
	ApproverId     string `json:"approverId" binding:"required"`
	ActingUserRole string `json:"actingUserRole" binding:"required"`
}

type RejectLoanRequest struct {
	ApproverId     string `json:"approverId" binding:"required"`
	ActingUserRole string `json:"actingUserRole" binding:"required"`
	Reason         string `json:"reason" binding:"required"`
}

type WriteOffLoanRequest struct {
	ApproverId     string `json:"approverId" binding:"required"`
	ActingUserRole string `json:"actingUserRole" binding:"required"`
	Notes          string `json:"notes" binding:"required"`
}

type RecordPaymentRequest struct {
	LoanId       string `json:"loanId" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
	PaymentDate  string `json:"paymentDate" binding:"required"`
	Method       string `json:"method" binding:"required"`
	Note         string `json:"note"`
	ActingUserId string `json:"actingUserId" binding:"required"`
}
