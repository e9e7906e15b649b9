package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
	"github.com/bizgenie/bizgenie-api/internal/core/ports"
)

const collectionLeads = "leads"

// LeadRepository implements ports.LeadRepository. Leads live in one collection
// partitioned by business_id; every query carries the business filter so a
// document is only ever reachable through its own tenant.
type LeadRepository struct {
	coll *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{coll: db.Collection(collectionLeads)}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *domain.Lead) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, lead); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, businessID, id string) (*domain.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var lead domain.Lead
	filter := bson.M{"_id": id, "business_id": businessID}
	if err := r.coll.FindOne(ctx, filter).Decode(&lead); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return &lead, nil
}

func (r *LeadRepository) List(ctx context.Context, scope ports.LeadScope) ([]*domain.Lead, error) {
	if scope.BusinessID == "" {
		return []*domain.Lead{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"business_id": scope.BusinessID}
	if scope.AssignedTo != "" {
		filter["assigned_to"] = scope.AssignedTo
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer cursor.Close(ctx)

	leads := []*domain.Lead{}
	for cursor.Next(ctx) {
		var lead domain.Lead
		if err := cursor.Decode(&lead); err != nil {
			return nil, fmt.Errorf("decode lead: %w", err)
		}
		leads = append(leads, &lead)
	}
	return leads, cursor.Err()
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, businessID, id string, status domain.LeadStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "business_id": businessID}
	update := bson.M{"$set": bson.M{"status": string(status)}, "$currentDate": bson.M{"last_interaction": true}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update lead status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Assign(ctx context.Context, businessID, id, agentID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "business_id": businessID}
	update := bson.M{"$set": bson.M{"assigned_to": agentID}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("assign lead: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}
