package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/consts"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/db"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/logger"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
)

type MessagesRepository struct {
	repo *MongoRepository[models.Messages]
}

func NewMessagesRepository() *MessagesRepository {
	collection := db.MDB.Database.Collection(consts.MessagesCollection)
	mrepo := NewMongoRepository[models.Messages](collection)

	return &MessagesRepository{repo: mrepo}
}

func (r *MessagesRepository) MessageByFilter(filter interface{}) ([]models.Messages, error) {
	return r.repo.FindAll(filter)
}

// GetMessageID resolves the SMS pattern for an event, preferring a
// branch-specific mapping over the global one.
func (r *MessagesRepository) GetMessageID(ctx context.Context, event string, branchId primitive.ObjectID) (*models.MessageResponse, error) {
	if event == "" {
		return nil, consts.ErrorNoDocumentFound
	}

	messageFilter := bson.M{"event": event, "isDeleted": bson.M{"$ne": true}}

	messages, err := r.MessageByFilter(messageFilter)
	if err != nil {
		logger.Error(ctx, "Error while fetching messages for event %v: %v", event, err)
		return nil, err
	}
	if len(messages) == 0 {
		logger.Warn(ctx, "No documents for event %v found", event)
		return nil, mongo.ErrNoDocuments
	}

	var chosen *models.Messages
	for i := range messages {
		if branchId != primitive.NilObjectID && messages[i].BranchId == branchId.Hex() {
			chosen = &messages[i]
			break
		}
		if messages[i].BranchId == "" && chosen == nil {
			chosen = &messages[i]
		}
	}
	if chosen == nil {
		chosen = &messages[0]
	}

	return &models.MessageResponse{
		MessageID:  chosen.PatternId,
		Parameters: chosen.Parameters,
	}, nil
}
