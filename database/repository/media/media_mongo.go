package mediaRepo

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

const mediaCollection = "media"

type mongoMediaRepo struct {
	coll *mongo.Collection
}

// NewMongoMediaRepo creates the Mongo-backed media repository.
func NewMongoMediaRepo() MediaRepository {
	repo := &mongoMediaRepo{coll: database.Collection(mediaCollection)}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _ = repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	})
	return repo
}

func (r *mongoMediaRepo) Create(ctx context.Context, asset *models.MediaAsset) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if asset.ID == "" {
		asset.ID = uuid.New().String()
	}
	now := time.Now()
	asset.CreatedAt = now
	asset.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, asset)
	return err
}

func (r *mongoMediaRepo) GetByID(ctx context.Context, id string) (*models.MediaAsset, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var asset models.MediaAsset
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *mongoMediaRepo) List(ctx context.Context, q MediaQuery) ([]models.MediaAsset, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if q.Kind != "" {
		filter["kind"] = q.Kind
	}
	if q.Tag != "" {
		filter["tags"] = q.Tag
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

	var assets []models.MediaAsset
	if err := cursor.All(ctx, &assets); err != nil {
		return nil, 0, err
	}
	return assets, total, nil
}

func (r *mongoMediaRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.MediaAsset, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updates["updatedAt"] = time.Now()
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var updated models.MediaAsset
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": updates}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoMediaRepo) Delete(ctx context.Context, id string) error {
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
