package consts

import "github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"

var (
	ErrorPrincipalNotPositive = &models.CustomError{
		Code:    "LENDY_VALIDATION_PRINCIPAL_NOT_POSITIVE",
		Message: "Loan principal must be greater than zero",
	}
	ErrorAmountNotPositive = &models.CustomError{
		Code:    "LENDY_VALIDATION_AMOUNT_NOT_POSITIVE",
		Message: "Payment amount must be greater than zero",
	}
	ErrorInvalidObjectId = &models.CustomError{
		Code:    "LENDY_VALIDATION_OBJECT_ID_INVALID",
		Message: "Identifier is not a valid object id",
	}
	ErrorInvalidDate = &models.CustomError{
		Code:    "LENDY_VALIDATION_DATE_INVALID",
		Message: "Date is not a valid calendar date",
	}
	ErrorInvalidProgram = &models.CustomError{
		Code:    "LENDY_VALIDATION_PROGRAM_INVALID",
		Message: "Unknown loan program",
	}
	ErrorInvalidTermWeeks = &models.CustomError{
		Code:    "LENDY_VALIDATION_TERM_WEEKS_INVALID",
		Message: "Payment term must be at least one week",
	}
	ErrorMemberNotFound = &models.CustomError{
		Code:    "LENDY_VALIDATION_MEMBER_NOT_FOUND",
		Message: "Member not found",
	}
	ErrorLoanNotFound = &models.CustomError{
		Code:    "LENDY_VALIDATION_LOAN_NOT_FOUND",
		Message: "Loan not found",
	}
	ErrorMemberNotActive = &models.CustomError{
		Code:    "LENDY_POLICY_MEMBER_NOT_ACTIVE",
		Message: "Member status does not permit new loans",
	}
	ErrorActiveLoanExists = &models.CustomError{
		Code:    "LENDY_POLICY_ACTIVE_LOAN_EXISTS",
		Message: "Member has an open loan that is not yet repaid",
	}
	ErrorAmountExceedsLevel = &models.CustomError{
		Code:    "LENDY_POLICY_AMOUNT_EXCEEDS_LEVEL",
		Message: "Requested amount exceeds the member's increment level",
	}
	ErrorTermNotAllowed = &models.CustomError{
		Code:    "LENDY_POLICY_TERM_NOT_ALLOWED",
		Message: "Requested term is not enabled at the member's increment level",
	}
	ErrorIncrementLevelNotConfigured = &models.CustomError{
		Code:    "LENDY_POLICY_INCREMENT_LEVEL_NOT_CONFIGURED",
		Message: "No increment level row configured for the member's level",
	}
	ErrorLoanNotPending = &models.CustomError{
		Code:    "LENDY_TRANSITION_LOAN_NOT_PENDING",
		Message: "Operation is only legal while the loan is pending approval",
	}
	ErrorAlreadyApproved = &models.CustomError{
		Code:    "LENDY_TRANSITION_ALREADY_APPROVED",
		Message: "Loan has already been approved; schedule exists",
	}
	ErrorLoanNotActive = &models.CustomError{
		Code:    "LENDY_TRANSITION_LOAN_NOT_ACTIVE",
		Message: "Operation is only legal while the loan is active",
	}
	ErrorLoanTerminal = &models.CustomError{
		Code:    "LENDY_TRANSITION_LOAN_TERMINAL",
		Message: "Loan is in a terminal state and cannot be mutated",
	}
	ErrorCreateInProgress = &models.CustomError{
		Code:    "LENDY_TRANSITION_CREATE_IN_PROGRESS",
		Message: "Another loan origination for this member is in flight",
	}
	ErrorPaymentLockTimeout = &models.CustomError{
		Code:    "LENDY_TRANSIENT_PAYMENT_LOCK_TIMEOUT",
		Message: "Could not acquire the loan payment lock; retry",
	}
	ErrorStoreTimeout = &models.CustomError{
		Code:    "LENDY_TRANSIENT_STORE_TIMEOUT",
		Message: "Storage operation timed out; retry",
	}
	ErrorNoDocumentFound = &models.CustomError{
		Code:    "LENDY_INTERNAL_ERROR_NO_DOCUMENTS_FOUND",
		Message: "No documents in result",
	}
)
