package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/consts"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/db"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/logger"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
)

type PaymentRepository struct {
	repo *MongoRepository[models.Payments]
}

func NewPaymentRepository() *PaymentRepository {
	collection := db.MDB.Database.Collection(consts.PaymentsCollection)
	mrepo := NewMongoRepository[models.Payments](collection)
	return &PaymentRepository{repo: mrepo}
}

func (r *PaymentRepository) PaymentsByLoan(ctx context.Context, loanId primitive.ObjectID) ([]models.Payments, error) {
	filter := bson.M{"loanId": loanId}
	return r.repo.FindAllSorted(filter, bson.D{{Key: "createdAt", Value: 1}})
}

// CommitDistribution writes one payment distribution atomically: the payment
// row, every touched installment, and the loan aggregate update (guarded by
// the version the engine computed against). Any failure aborts the whole
// transaction and the loan stays exactly as it was.
func (r *PaymentRepository) CommitDistribution(
	ctx context.Context,
	payment models.Payments,
	installments []models.Installment,
	loanId primitive.ObjectID,
	loanVersion int32,
	loanFields bson.M,
) (primitive.ObjectID, error) {

	installmentColl := db.MDB.Database.Collection(consts.InstallmentsCollection)
	loanColl := db.MDB.Database.Collection(consts.LoansCollection)

	var paymentId primitive.ObjectID

	session, err := db.MDB.Client.StartSession()
	if err != nil {
		return primitive.NilObjectID, err
	}
	defer session.EndSession(ctx)

	txnErr := mongo.WithSession(ctx, session, func(sessCtx mongo.SessionContext) error {
		if err := session.StartTransaction(); err != nil {
			return err
		}

		insertResult, err := r.repo.collection.InsertOne(sessCtx, payment)
		if err != nil {
			session.AbortTransaction(sessCtx)
			return err
		}
		paymentId, _ = insertResult.InsertedID.(primitive.ObjectID)

		for _, inst := range installments {
			update := bson.M{"$set": bson.M{
				"amountPaid": inst.AmountPaid,
				"isPaid":     inst.IsPaid,
				"paidDate":   inst.PaidDate,
			}}
			if _, err := installmentColl.UpdateOne(sessCtx, bson.M{"_id": inst.InstallmentId}, update); err != nil {
				session.AbortTransaction(sessCtx)
				return err
			}
		}

		loanFields["version"] = loanVersion + 1
		loanFilter := bson.M{"_id": loanId, "version": loanVersion}
		updateResult, err := loanColl.UpdateOne(sessCtx, loanFilter, bson.M{"$set": loanFields})
		if err != nil {
			session.AbortTransaction(sessCtx)
			return err
		}
		if updateResult.MatchedCount == 0 {
			// Lost the version race despite the redis lease; bail out and let
			// the engine re-read and retry.
			session.AbortTransaction(sessCtx)
			return mongo.ErrNoDocuments
		}

		return session.CommitTransaction(sessCtx)
	})
	if txnErr != nil {
		logger.Error(ctx, "Payments : distribution transaction failed %v", txnErr)
		return primitive.NilObjectID, txnErr
	}

	return paymentId, nil
}

// GetFailedKafkaEntries returns payments from the last lastXHours whose ledger
// event never reached the broker.
func (r *PaymentRepository) GetFailedKafkaEntries(ctx context.Context, lastXHours int32) ([]models.Payments, error) {
	cutoff := time.Now().Add(-time.Duration(lastXHours) * time.Hour)
	filter := bson.M{
		"kafkaFlag": false,
		"createdAt": bson.M{"$gte": cutoff},
	}
	return r.repo.FindAll(filter)
}

// SetKafkaFlag marks the given payment ids as published. Returns the ids that
// failed to update.
func (r *PaymentRepository) SetKafkaFlag(ctx context.Context, paymentIds []string) ([]string, error) {
	var failed []string
	for _, idHex := range paymentIds {
		id, err := primitive.ObjectIDFromHex(idHex)
		if err != nil {
			failed = append(failed, idHex)
			continue
		}
		if err := r.repo.Update(bson.M{"_id": id}, bson.M{"kafkaFlag": true}); err != nil {
			logger.Error(ctx, "Payments : error setting kafka flag for %v: %v", idHex, err)
			failed = append(failed, idHex)
		}
	}
	if len(failed) > 0 {
		return failed, consts.ErrorStoreTimeout
	}
	return nil, nil
}
