package consts

const (
	RemainingLoanAmount = "REMAINING_LOAN_AMOUNT"
	LoanAmount          = "LOAN_AMOUNT"
	LoanDate            = "LOAN_DATE"
	AmountCollected     = "AMOUNT_COLLECTED"
	InstallmentDueDate  = "INSTALLMENT_DUE_DATE"
	ExcessAmount        = "EXCESS_AMOUNT"
	MemberPhone         = "MEMBER_PHONE"
)
