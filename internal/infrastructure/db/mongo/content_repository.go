package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
)

const collectionContent = "content"

// ContentRepository implements ports.ContentRepository over the per-business
// content collection. Listing is business-wide; role visibility belongs to the
// service layer.
type ContentRepository struct {
	coll *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{coll: db.Collection(collectionContent)}
}

func (r *ContentRepository) Insert(ctx context.Context, item *domain.ContentItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("insert content: %w", err)
	}
	return nil
}

func (r *ContentRepository) FindByID(ctx context.Context, businessID, id string) (*domain.ContentItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var item domain.ContentItem
	filter := bson.M{"_id": id, "business_id": businessID}
	if err := r.coll.FindOne(ctx, filter).Decode(&item); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrContentNotFound
		}
		return nil, fmt.Errorf("find content: %w", err)
	}
	return &item, nil
}

func (r *ContentRepository) ListByBusiness(ctx context.Context, businessID string) ([]*domain.ContentItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"business_id": businessID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	defer cursor.Close(ctx)

	items := []*domain.ContentItem{}
	for cursor.Next(ctx) {
		var item domain.ContentItem
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("decode content: %w", err)
		}
		items = append(items, &item)
	}
	return items, cursor.Err()
}

func (r *ContentRepository) UpdateStatus(ctx context.Context, businessID, id string, status domain.ContentStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "business_id": businessID}
	update := bson.M{"$set": bson.M{"status": string(status)}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update content status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrContentNotFound
	}
	return nil
}
