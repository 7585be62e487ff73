package consts

const (
	MembersCollection                = "Members"
	LoansCollection                  = "Loans"
	InstallmentsCollection           = "Installments"
	PaymentsCollection               = "Payments"
	LoanIncrementLevelsCollection    = "LoanIncrementLevels"
	TransactionsInProgressCollection = "LoanTransactionsInProgress"
	MessagesCollection               = "Messages"
)
