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

type InstallmentRepository struct {
	repo *MongoRepository[models.Installment]
}

func NewInstallmentRepository() *InstallmentRepository {
	collection := db.MDB.Database.Collection(consts.InstallmentsCollection)
	mrepo := NewMongoRepository[models.Installment](collection)
	return &InstallmentRepository{repo: mrepo}
}

// InstallmentsByLoan returns the full schedule in ascending sequence order.
func (r *InstallmentRepository) InstallmentsByLoan(ctx context.Context, loanId primitive.ObjectID) ([]models.Installment, error) {
	filter := bson.M{"loanId": loanId}
	return r.repo.FindAllSorted(filter, bson.D{{Key: "sequence", Value: 1}})
}

// UnpaidInstallmentsByLoan returns unpaid rows in ascending sequence order.
func (r *InstallmentRepository) UnpaidInstallmentsByLoan(ctx context.Context, loanId primitive.ObjectID) ([]models.Installment, error) {
	filter := bson.M{"loanId": loanId, "isPaid": false}
	return r.repo.FindAllSorted(filter, bson.D{{Key: "sequence", Value: 1}})
}

// NextUnpaidInstallment returns the earliest unpaid installment or nil when
// the schedule is fully paid.
func (r *InstallmentRepository) NextUnpaidInstallment(ctx context.Context, loanId primitive.ObjectID) (*models.Installment, error) {
	filter := bson.M{"loanId": loanId, "isPaid": false}

	inst, err := r.repo.ReadSorted(filter, bson.D{{Key: "sequence", Value: 1}})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &inst, nil
}

func (r *InstallmentRepository) CountByLoan(ctx context.Context, loanId primitive.ObjectID) (int64, error) {
	return r.repo.CountDocuments(bson.M{"loanId": loanId})
}

func (r *InstallmentRepository) CreateInstallmentEntries(ctx context.Context, installments []models.Installment) error {
	docs := make([]interface{}, len(installments))
	for i := range installments {
		docs[i] = installments[i]
	}

	_, err := r.repo.CreateMany(docs)
	if err != nil {
		logger.Error(ctx, "Installments : Error while inserting %v", err)
		return fmt.Errorf("Installments : error while inserting %v", err.Error())
	}
	return nil
}
