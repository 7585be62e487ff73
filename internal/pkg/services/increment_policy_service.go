package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/consts"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/logger"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/money"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/utils"
)

// IncrementPolicyService answers how much a member may borrow next. Levels
// graduate one step per fully repaid loan and are capped by the highest row
// configured in the lookup table.
type IncrementPolicyService struct {
	memberRepo MemberStoreInterface
	loanRepo   LoanStoreInterface
	levelRepo  IncrementLevelStoreInterface
}

func NewIncrementPolicyService(memberRepo MemberStoreInterface, loanRepo LoanStoreInterface, levelRepo IncrementLevelStoreInterface) *IncrementPolicyService {
	return &IncrementPolicyService{
		memberRepo: memberRepo,
		loanRepo:   loanRepo,
		levelRepo:  levelRepo,
	}
}

func (p *IncrementPolicyService) NextIncrement(ctx context.Context, memberId primitive.ObjectID) (*models.IncrementSuggestion, error) {
	if _, err := p.memberRepo.MemberById(ctx, memberId); err != nil {
		return nil, err
	}

	level, err := p.nextLevelFor(ctx, memberId)
	if err != nil {
		return nil, err
	}

	row, err := p.levelRepo.LevelByNumber(ctx, level)
	if err != nil {
		logger.Error(ctx, "IncrementPolicy : no level row for %v: %v", level, err)
		return nil, err
	}

	return &models.IncrementSuggestion{
		Level:              row.Level,
		Amount:             row.Amount,
		EligibleTermsWeeks: row.EligibleTermsWeeks,
		CanBorrowLess:      true,
	}, nil
}

// nextLevelFor derives the member's next level from their most recent loan.
// Graduation happens only off a loan that closed repaid with a zero balance;
// any other history keeps the member at the level they last borrowed at, and
// no history at all means level one.
func (p *IncrementPolicyService) nextLevelFor(ctx context.Context, memberId primitive.ObjectID) (int, error) {
	latest, err := p.loanRepo.LatestLoanByMember(ctx, memberId)
	if err != nil {
		return 0, err
	}

	level := consts.DefaultIncrementLevel
	if latest != nil {
		if latest.Status == models.LoanRepaid && latest.CurrentBalance.IsZero() {
			level = latest.IncrementLevel + 1
		} else if latest.IncrementLevel > 0 {
			level = latest.IncrementLevel
		}
	}

	maxLevel, err := p.levelRepo.MaxLevel(ctx)
	if err != nil {
		return 0, err
	}
	if level > maxLevel {
		level = maxLevel
	}
	return level, nil
}

// ValidateRequestedLoan checks a concrete origination request against the
// policy. The open-loan guard runs first so an ineligible member is rejected
// before any loan row exists. Elevated roles get the corrected figures back as
// a suggestion instead of a hard rejection; the verdict fields always carry
// what the policy considers correct.
func (p *IncrementPolicyService) ValidateRequestedLoan(ctx context.Context, member *models.Member, requestedAmount money.Money, requestedWeeks int, actingUserRole string) (*models.LoanValidationResult, *models.IncrementSuggestion, error) {

	if member.Status != models.MemberActive {
		logger.Warn(ctx, "IncrementPolicy : member %v status %v blocks origination", member.MemberId.Hex(), member.Status)
		return nil, nil, consts.ErrorMemberNotActive
	}

	openLoan, err := p.loanRepo.OpenLoanByMember(ctx, member.MemberId)
	if err != nil {
		return nil, nil, err
	}
	if openLoan != nil {
		logger.Warn(ctx, "IncrementPolicy : member %v has open loan %v", member.MemberId.Hex(), openLoan.LoanId.Hex())
		return nil, nil, consts.ErrorActiveLoanExists
	}

	suggestion, err := p.NextIncrement(ctx, member.MemberId)
	if err != nil {
		return nil, nil, err
	}

	result := &models.LoanValidationResult{
		IsValid:         true,
		SuggestedAmount: suggestion.Amount,
		SuggestedWeeks:  suggestion.EligibleTermsWeeks,
	}

	var policyErr *models.CustomError
	if requestedAmount.Cmp(suggestion.Amount) > 0 {
		policyErr = consts.ErrorAmountExceedsLevel
	} else if !termAllowed(suggestion.EligibleTermsWeeks, requestedWeeks) {
		policyErr = consts.ErrorTermNotAllowed
	}

	if policyErr != nil {
		result.ErrorMessage = policyErr.Message
		if !utils.IsElevatedRole(actingUserRole) {
			result.IsValid = false
			return result, suggestion, policyErr
		}
		logger.Info(ctx, "IncrementPolicy : elevated role %v overrides %v for member %v", actingUserRole, policyErr.Code, member.MemberId.Hex())
	}

	return result, suggestion, nil
}

func termAllowed(eligible []int, weeks int) bool {
	for _, w := range eligible {
		if w == weeks {
			return true
		}
	}
	return false
}
