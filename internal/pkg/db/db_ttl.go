package db

import (
	"context"
	"github.com/Cysparks-Inc/lendy-sub000/configs"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/consts"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/logger"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateDbTtlIfNotExists() {
	if MDB == nil || MDB.Database == nil {
		logger.Info("Skipping TTL index setup: MongoDB is not connected")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := MDB.Database.Collection(consts.TransactionsInProgressCollection)

	// Stale origination guards expire on their own.
	indexField := "createdAt"
	ttlDuration := int32(configs.LOAN_CREATE_TTL_IN_HOURS * 3600)

	indexesCursor, err := collection.Indexes().List(ctx)
	if err != nil {
		logger.Error("Failed to list indexes: %v", err)
	}

	indexExists := false
	for indexesCursor.Next(ctx) {

		var index bson.M
		err := indexesCursor.Decode(&index)
		if err != nil {
			logger.Error("Error decoding index information:%v", err)
		}

		expiryValue, hasExpireOption := index["expireAfterSeconds"]

		if hasExpireOption {

			expiryTime := expiryValue.(int32)
			if expiryTime != ttlDuration {
				_, err := collection.Indexes().DropOne(ctx, index["name"].(string))
				if err != nil {
					logger.Error("could not drop index: %v", err)
				}
				indexExists = false
				logger.Info("TTL index deleted.")
				break
			} else {
				indexExists = true
				logger.Info("TTL index already exists.")
				break
			}
		}
	}

	if !indexExists {
		indexModel := mongo.IndexModel{
			Keys:    bson.D{{Key: indexField, Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(ttlDuration),
		}

		_, err := collection.Indexes().CreateOne(ctx, indexModel)
		if err != nil {
			logger.Error("Failed to create TTL index:%v", err)
		} else {
			logger.Info("TTL index created successfully.")
		}
	}

}
