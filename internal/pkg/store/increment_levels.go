package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/consts"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/db"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
)

// IncrementLevelRepository reads the static level lookup table. Rows are
// seeded by operations tooling; the engine never writes them.
type IncrementLevelRepository struct {
	repo *MongoRepository[models.LoanIncrementLevel]
}

func NewIncrementLevelRepository() *IncrementLevelRepository {
	collection := db.MDB.Database.Collection(consts.LoanIncrementLevelsCollection)
	mrepo := NewMongoRepository[models.LoanIncrementLevel](collection)
	return &IncrementLevelRepository{repo: mrepo}
}

func (r *IncrementLevelRepository) LevelByNumber(ctx context.Context, level int) (*models.LoanIncrementLevel, error) {
	filter := bson.M{"level": level}

	row, err := r.repo.Read(filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorIncrementLevelNotConfigured
		}
		return nil, err
	}
	return &row, nil
}

func (r *IncrementLevelRepository) MaxLevel(ctx context.Context) (int, error) {
	row, err := r.repo.ReadSorted(bson.M{}, bson.D{{Key: "level", Value: -1}})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, consts.ErrorIncrementLevelNotConfigured
		}
		return 0, err
	}
	return row.Level, nil
}
