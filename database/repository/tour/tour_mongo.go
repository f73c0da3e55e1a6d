package tourRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tourbase/database"
)

const tourCollection = "tours"

type mongoTourRepo struct {
	coll *mongo.Collection
}

// NewMongoTourRepo creates the Mongo-backed tour repository and ensures its
// indexes exist.
func NewMongoTourRepo() TourRepository {
	repo := &mongoTourRepo{coll: database.Collection(tourCollection)}
	repo.ensureIndexes()
	return repo
}

func (r *mongoTourRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "published", Value: 1}, {Key: "destination", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}
	// Index creation failures are non-fatal; queries still work unindexed.
	_, _ = r.coll.Indexes().CreateMany(ctx, indexes)
}
