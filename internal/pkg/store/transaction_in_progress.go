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

type TransactionInProgressRepository struct {
	repo *MongoRepository[models.TransactionInProgress]
}

func NewTransactionInProgressRepository() *TransactionInProgressRepository {
	collection := db.MDB.Database.Collection(consts.TransactionsInProgressCollection)
	mrepo := NewMongoRepository[models.TransactionInProgress](collection)
	return &TransactionInProgressRepository{repo: mrepo}
}

func (r *TransactionInProgressRepository) DeleteTransactionInProgressByMember(ctx context.Context, memberId primitive.ObjectID) (bool, error) {

	filter := bson.M{"memberId": memberId}

	err := r.repo.Delete(filter)

	if err != nil {
		logger.Error(ctx, "TransactionInProgress : Error while deleting %v", err.Error())
		return false, fmt.Errorf("TransactionInProgress : error while deleting %v", err.Error())
	}

	return true, nil
}

func (r *TransactionInProgressRepository) CreateTransactionInProgressEntry(ctx context.Context, transactionInProgressDB models.TransactionInProgress) (bool, error) {

	_, err := r.repo.Create(transactionInProgressDB)

	if err != nil {
		logger.Error(ctx, "TransactionInProgress : Error while inserting %v", err.Error())
		return false, fmt.Errorf("TransactionInProgress : error while inserting %v", err.Error())
	}

	return true, nil
}

func (r *TransactionInProgressRepository) IsCreateInProgress(ctx context.Context, memberId primitive.ObjectID) (bool, error) {

	filter := bson.M{"memberId": memberId}

	_, err := r.repo.Read(filter)
	if err != nil {

		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		logger.Error(ctx, "Error querying the database for IsCreateInProgress: %v", err)
		return false, err
	}

	return true, nil

}
