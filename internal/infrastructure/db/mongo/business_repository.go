package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
)

const collectionBusinesses = "businesses"

// BusinessRepository implements ports.BusinessRepository. Summaries are
// assembled from per-tenant counts over the users and leads collections.
type BusinessRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewBusinessRepository(db *mongo.Database) *BusinessRepository {
	return &BusinessRepository{db: db, coll: db.Collection(collectionBusinesses)}
}

func (r *BusinessRepository) CreateProfile(ctx context.Context, profile *domain.BusinessProfile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrBusinessExists
		}
		return fmt.Errorf("insert business profile: %w", err)
	}
	return nil
}

func (r *BusinessRepository) FindByID(ctx context.Context, id string) (*domain.BusinessProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var profile domain.BusinessProfile
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("find business: %w", err)
	}
	return &profile, nil
}

func (r *BusinessRepository) AddFileRef(ctx context.Context, businessID, ref string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$addToSet": bson.M{"uploaded_files": ref}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": businessID}, update)
	if err != nil {
		return fmt.Errorf("add file ref: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

func (r *BusinessRepository) RemoveFileRef(ctx context.Context, businessID, ref string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$pull": bson.M{"uploaded_files": ref}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": businessID}, update)
	if err != nil {
		return fmt.Errorf("remove file ref: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

// ListSummaries builds the platform-admin read model: one summary per tenant
// with owner identity and usage counts, newest tenants last.
func (r *BusinessRepository) ListSummaries(ctx context.Context) ([]*domain.BusinessSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := []*domain.BusinessSummary{}
	for cursor.Next(ctx) {
		var profile domain.BusinessProfile
		if err := cursor.Decode(&profile); err != nil {
			return nil, fmt.Errorf("decode business: %w", err)
		}

		summary, err := r.summarize(ctx, &profile)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, cursor.Err()
}

func (r *BusinessRepository) summarize(ctx context.Context, profile *domain.BusinessProfile) (*domain.BusinessSummary, error) {
	agentCount, err := r.db.Collection(collectionUsers).CountDocuments(ctx, bson.M{
		"business_id": profile.ID,
		"role":        string(domain.RoleAgent),
	})
	if err != nil {
		return nil, fmt.Errorf("count agents: %w", err)
	}

	leadCount, err := r.db.Collection(collectionLeads).CountDocuments(ctx, bson.M{"business_id": profile.ID})
	if err != nil {
		return nil, fmt.Errorf("count leads: %w", err)
	}

	campaigns, err := r.db.Collection(collectionContent).CountDocuments(ctx, bson.M{
		"business_id": profile.ID,
		"status":      string(domain.ContentPublished),
	})
	if err != nil {
		return nil, fmt.Errorf("count campaigns: %w", err)
	}

	var owner identityDoc
	ownerName, ownerEmail := "", ""
	if err := r.db.Collection(collectionUsers).FindOne(ctx, bson.M{"_id": profile.OwnerID}).Decode(&owner); err == nil {
		ownerName, ownerEmail = owner.Name, owner.Email
	}

	return &domain.BusinessSummary{
		ID:         profile.ID,
		Name:       profile.Name,
		Industry:   profile.Industry,
		OwnerName:  ownerName,
		OwnerEmail: ownerEmail,
		AgentCount: agentCount,
		Plan:       profile.Plan,
		Status:     profile.Status,
		JoinedDate: profile.CreatedAt,
		Stats: domain.BusinessStats{
			TotalLeads:       leadCount,
			CampaignsRunning: campaigns,
			StorageUsed:      fmt.Sprintf("%d files", len(profile.UploadedFiles)),
		},
	}, nil
}
