package consts

// User roles accepted on commands. ElevatedRoles may override policy amount
// checks (the policy still returns its corrected suggestion).
const (
	RoleAdministrator = "administrator"
	RoleBranchManager = "branch_manager"
	RoleLoanOfficer   = "loan_officer"
)

var ElevatedRoles = []string{RoleAdministrator}

// Report scope kinds for the overdue classifier.
const (
	ScopeGlobal  = "global"
	ScopeBranch  = "branch"
	ScopeOfficer = "officer"
)

// Overdue computation modes: loan-due-date based, or installment-aware
// ("unified"). Both report styles ship; consumers choose per call.
const (
	OverdueModeLoanDueDate = "loan_due_date"
	OverdueModeInstallment = "installment"
)

// DefaultIncrementLevel applies to members with no fully repaid prior loan.
const DefaultIncrementLevel = 1

// Payment lock key prefix in redis, suffixed with the loan id hex.
const PaymentLockKeyPrefix = "lendy:payment-lock:"

// Operation log status labels.
const (
	LoggerSuccessResult = "SUCCESS"
	LoggerFailedResult  = "FAILED"
)

// SensitiveKeys are header and payload fields masked before request logging.
var SensitiveKeys = []string{"Authorization", "Cookie", "nationalIdNo", "phone"}
