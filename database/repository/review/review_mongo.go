package reviewRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourbase/database"
	"tourbase/models"
)

// ReviewRepository defines persistence operations for tour reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	ListByTour(ctx context.Context, tourID, status string) ([]models.Review, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Review, error)
	ApprovedStats(ctx context.Context, tourID string) (avg float64, count int, err error)
}

const reviewCollection = "reviews"

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates the Mongo-backed review repository.
func NewMongoReviewRepo() ReviewRepository {
	repo := &mongoReviewRepo{coll: database.Collection(reviewCollection)}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _ = repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "tourId", Value: 1}, {Key: "status", Value: 1}}},
	})
	return repo
}

func (r *mongoReviewRepo) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, review)
	return err
}

func (r *mongoReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *mongoReviewRepo) ListByTour(ctx context.Context, tourID, status string) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"tourId": tourID}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *mongoReviewRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var updated models.Review
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ApprovedStats aggregates the approved-review average rating and count for a tour.
func (r *mongoReviewRepo) ApprovedStats(ctx context.Context, tourID string) (float64, int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"tourId": tourID, "status": models.ReviewStatusApproved}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"avg":   bson.M{"$avg": "$rating"},
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Avg   float64 `bson:"avg"`
		Count int     `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return results[0].Avg, results[0].Count, nil
}
