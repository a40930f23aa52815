package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/acmecorp/adminboard/internal/core/domain"
	"github.com/acmecorp/adminboard/internal/core/ports"
)

const showcaseCollection = "showcase_items"

// ShowcaseRepository persists showcase items.
type ShowcaseRepository struct {
	coll *mongo.Collection
}

func NewShowcaseRepository(db *mongo.Database) *ShowcaseRepository {
	return &ShowcaseRepository{coll: db.Collection(showcaseCollection)}
}

type mongoItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Status      string             `bson:"status"`
	Priority    int                `bson:"priority"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mi mongoItem) toDomain() *domain.ShowcaseItem {
	return &domain.ShowcaseItem{
		ID:          mi.ID.Hex(),
		Title:       mi.Title,
		Description: mi.Description,
		Status:      domain.ItemStatus(mi.Status),
		Priority:    mi.Priority,
		CreatedAt:   mi.CreatedAt.UTC(),
		UpdatedAt:   mi.UpdatedAt.UTC(),
	}
}

// itemID distinguishes a malformed id (cast failure) from a well-formed
// but absent one: the former never reaches the database.
func itemID(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, domain.ErrInvalidItemID
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidItemID
	}
	return oid, nil
}

func (r *ShowcaseRepository) Create(ctx context.Context, item *domain.ShowcaseItem) (*domain.ShowcaseItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoItem{
		Title:       item.Title,
		Description: item.Description,
		Status:      string(item.Status),
		Priority:    item.Priority,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert showcase item: %w", err)
	}

	created := *item
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ShowcaseRepository) FindByID(ctx context.Context, id string) (*domain.ShowcaseItem, error) {
	oid, err := itemID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mi mongoItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find showcase item: %w", err)
	}
	return mi.toDomain(), nil
}

// List returns items newest-created-first, optionally filtered by status.
func (r *ShowcaseRepository) List(ctx context.Context, filter ports.ListItemsFilter) ([]*domain.ShowcaseItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list showcase items: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.ShowcaseItem, 0)
	for cur.Next(ctx) {
		var mi mongoItem
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode showcase item: %w", err)
		}
		items = append(items, mi.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list showcase items: %w", err)
	}
	return items, nil
}

// Update applies the non-nil fields of update atomically and returns
// the document after the write.
func (r *ShowcaseRepository) Update(ctx context.Context, id string, update ports.ItemUpdate) (*domain.ShowcaseItem, error) {
	oid, err := itemID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": update.UpdatedAt}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}
	if update.Priority != nil {
		set["priority"] = *update.Priority
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mi mongoItem
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("update showcase item: %w", err)
	}
	return mi.toDomain(), nil
}

func (r *ShowcaseRepository) Delete(ctx context.Context, id string) error {
	oid, err := itemID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete showcase item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// EnsureIndexes creates the status and created_at indexes backing the
// list filter and sort order.
func (r *ShowcaseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
