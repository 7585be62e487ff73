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

type MemberRepository struct {
	repo *MongoRepository[models.Member]
}

func NewMemberRepository() *MemberRepository {
	collection := db.MDB.Database.Collection(consts.MembersCollection)
	mrepo := NewMongoRepository[models.Member](collection)
	return &MemberRepository{repo: mrepo}
}

func (r *MemberRepository) MemberById(ctx context.Context, memberId primitive.ObjectID) (*models.Member, error) {
	filter := bson.M{"_id": memberId}

	member, err := r.repo.Read(filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorMemberNotFound
		}
		logger.Error(ctx, "Members : Error while reading %v", err)
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) UpdateIncrementLevel(ctx context.Context, memberId primitive.ObjectID, level int) error {
	filter := bson.M{"_id": memberId}
	return r.repo.Update(filter, bson.M{"incrementLevel": level})
}
