// File: database/repository/tour/crud.go
package tourRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourbase/models"
)

func (r *mongoTourRepo) Create(ctx context.Context, tour *models.Tour) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if tour.ID == "" {
		tour.ID = uuid.New().String()
	}
	now := time.Now()
	tour.CreatedAt = now
	tour.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, tour)
	return err
}

func (r *mongoTourRepo) GetByID(ctx context.Context, id string) (*models.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tour models.Tour
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tour); err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *mongoTourRepo) List(ctx context.Context, q TourQuery) ([]models.Tour, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if q.PublishedOnly {
		filter["published"] = true
	}
	if q.Destination != "" {
		filter["destination"] = q.Destination
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if q.PerPage > 0 {
		page := q.Page
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * q.PerPage)).SetLimit(int64(q.PerPage))
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, 0, err
	}
	return tours, total, nil
}

func (r *mongoTourRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updates["updatedAt"] = time.Now()
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var updated models.Tour
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": updates}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoTourRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTourRepo) UpdateReviewStats(ctx context.Context, id string, avg float64, count int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"averageRating": avg, "reviewCount": count, "updatedAt": time.Now()}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	return err
}
