package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/consts"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/db"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/logger"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
)

type LoanRepository struct {
	repo *MongoRepository[models.Loans]
}

func NewLoanRepository() *LoanRepository {
	collection := db.MDB.Database.Collection(consts.LoansCollection)
	mrepo := NewMongoRepository[models.Loans](collection)
	return &LoanRepository{repo: mrepo}
}

func (r *LoanRepository) LoanById(ctx context.Context, loanId primitive.ObjectID) (*models.Loans, error) {
	filter := bson.M{"_id": loanId}

	loan, err := r.repo.Read(filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorLoanNotFound
		}
		return nil, err
	}
	return &loan, nil
}

func (r *LoanRepository) LoansByFilter(filter interface{}) ([]models.Loans, error) {
	return r.repo.FindAll(filter)
}

// OpenLoanByMember returns the member's non-terminal loan, if any. A member
// may hold at most one open loan at a time.
func (r *LoanRepository) OpenLoanByMember(ctx context.Context, memberId primitive.ObjectID) (*models.Loans, error) {
	filter := bson.M{
		"memberId": memberId,
		"status":   bson.M{"$in": []models.LoanStatus{models.LoanPending, models.LoanActive}},
	}

	loan, err := r.repo.Read(filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &loan, nil
}

// LatestLoanByMember returns the member's most recently created loan in any
// state; increment graduation is decided from it.
func (r *LoanRepository) LatestLoanByMember(ctx context.Context, memberId primitive.ObjectID) (*models.Loans, error) {
	filter := bson.M{"memberId": memberId}

	loan, err := r.repo.ReadSorted(filter, bson.D{{Key: "createdAt", Value: -1}})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &loan, nil
}

func (r *LoanRepository) ActiveLoansByScope(ctx context.Context, scope string, scopeId primitive.ObjectID) ([]models.Loans, error) {
	filter := bson.M{"status": models.LoanActive}
	switch scope {
	case consts.ScopeBranch:
		filter["branchId"] = scopeId
	case consts.ScopeOfficer:
		filter["officerId"] = scopeId
	}
	return r.repo.FindAll(filter)
}

func (r *LoanRepository) CreateLoanEntry(ctx context.Context, loan models.Loans) (primitive.ObjectID, error) {
	result, err := r.repo.Create(loan)
	if err != nil {
		logger.Error(ctx, "Loans : Error while inserting %v", err)
		return primitive.NilObjectID, fmt.Errorf("Loans : error while inserting %v", err.Error())
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// CommitApproval moves a pending loan to active and materializes its schedule
// in one transaction. The version guard rejects a concurrent second approval
// before any installment row exists; any failure leaves the loan pending with
// no schedule.
func (r *LoanRepository) CommitApproval(ctx context.Context, loanId primitive.ObjectID, version int32, fields bson.M, installments []models.Installment) error {

	installmentColl := db.MDB.Database.Collection(consts.InstallmentsCollection)

	session, err := db.MDB.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	txnErr := mongo.WithSession(ctx, session, func(sessCtx mongo.SessionContext) error {
		if err := session.StartTransaction(); err != nil {
			return err
		}

		fields["version"] = version + 1
		loanFilter := bson.M{"_id": loanId, "version": version}
		updateResult, err := r.repo.collection.UpdateOne(sessCtx, loanFilter, bson.M{"$set": fields})
		if err != nil {
			session.AbortTransaction(sessCtx)
			return err
		}
		if updateResult.MatchedCount == 0 {
			session.AbortTransaction(sessCtx)
			return mongo.ErrNoDocuments
		}

		docs := make([]interface{}, len(installments))
		for i := range installments {
			docs[i] = installments[i]
		}
		if _, err := installmentColl.InsertMany(sessCtx, docs); err != nil {
			session.AbortTransaction(sessCtx)
			return err
		}

		return session.CommitTransaction(sessCtx)
	})
	if txnErr != nil {
		logger.Error(ctx, "Loans : approval transaction failed %v", txnErr)
		return txnErr
	}
	return nil
}

// UpdateLoanFields applies a partial $set to a loan, guarded by the version
// the caller read. A missed guard means a concurrent writer got there first
// and surfaces as ErrNoDocuments.
func (r *LoanRepository) UpdateLoanFields(ctx context.Context, loanId primitive.ObjectID, version int32, fields bson.M) error {
	filter := bson.M{"_id": loanId, "version": version}
	fields["version"] = version + 1

	result, err := r.repo.collection.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		logger.Error(ctx, "Loans : Error while updating %v", err)
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
