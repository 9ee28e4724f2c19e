package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/connecthub/connecthub-go/internal/domain/dao"
	"github.com/connecthub/connecthub-go/internal/domain/dao/mongo/document"
	"github.com/connecthub/connecthub-go/internal/domain/dao/mongo/mapper"
	"github.com/connecthub/connecthub-go/internal/domain/entity"
	apperrors "github.com/connecthub/connecthub-go/pkg/errors"
)

// profileDAO implements dao.ProfileDAO using MongoDB.
type profileDAO struct {
	*baseMongoDAO[entity.Profile, document.ProfileDocument]
	mapper *mapper.ProfileMapper
}

// NewProfileDAO creates a new MongoDB-based ProfileDAO.
func NewProfileDAO(db *mongo.Database) dao.ProfileDAO {
	return &profileDAO{
		baseMongoDAO: newBaseMongoDAO[entity.Profile, document.ProfileDocument](
			db,
			document.ProfileDocument{}.CollectionName(),
		),
		mapper: mapper.NewProfileMapper(),
	}
}

// idFilter builds the primary-key filter, or nil if id is not a valid
// ObjectID hex string. A nil filter can never match, which callers
// translate to not-found.
func idFilter(id string) bson.M {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	return bson.M{"_id": oid}
}

// Insert stores a new profile, assigning its ID and timestamps.
func (d *profileDAO) Insert(ctx context.Context, profile *entity.Profile) error {
	if profile.ID == "" {
		profile.ID = entity.NewID()
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	err := d.insertOne(ctx, d.mapper.ToDocument(profile))
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrDuplicateKey
	}
	return err
}

// FindByID retrieves a profile with all embedded data.
func (d *profileDAO) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	filter := idFilter(id)
	if filter == nil {
		return nil, nil
	}

	var doc document.ProfileDocument
	err := d.findOneByFilter(ctx, filter, &doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}

// FindByEmail retrieves a profile by its normalized email address.
func (d *profileDAO) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var doc document.ProfileDocument
	err := d.findOneByFilter(ctx, bson.M{"email": entity.NormalizeEmail(email)}, &doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}

// Replace persists the full current state of the profile.
func (d *profileDAO) Replace(ctx context.Context, profile *entity.Profile) error {
	filter := idFilter(profile.ID)
	if filter == nil {
		return apperrors.ErrNotFound
	}

	profile.UpdatedAt = time.Now()
	doc := d.mapper.ToDocument(profile)

	_, err := d.getCollection().ReplaceOne(ctx, filter, doc)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrDuplicateKey
	}
	return err
}

// UpdateFields applies a partial update of top-level fields and returns the
// updated profile.
func (d *profileDAO) UpdateFields(ctx context.Context, id string, fields map[string]any) (*entity.Profile, error) {
	filter := idFilter(id)
	if filter == nil {
		return nil, nil
	}

	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	var doc document.ProfileDocument
	err := d.findOneAndUpdate(ctx, filter, bson.M{"$set": set}, &doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, apperrors.ErrDuplicateKey
	}
	if err != nil {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}

// Delete removes a profile permanently.
func (d *profileDAO) Delete(ctx context.Context, id string) error {
	filter := idFilter(id)
	if filter == nil {
		return apperrors.ErrNotFound
	}
	return d.deleteOne(ctx, filter)
}

// IncrementViews bumps the profile view counter atomically.
func (d *profileDAO) IncrementViews(ctx context.Context, id string) error {
	filter := idFilter(id)
	if filter == nil {
		return apperrors.ErrNotFound
	}
	return d.updateOne(ctx, filter, bson.M{"$inc": bson.M{"profile_views": 1}})
}

// FindMany retrieves profiles matching the query, newest first. The password
// and connections fields are projected out of the result.
func (d *profileDAO) FindMany(ctx context.Context, query dao.ProfileQuery) ([]*entity.Profile, error) {
	filter := buildProfileFilter(query)

	opts := options.Find().
		SetProjection(bson.M{"password": 0, "connections": 0}).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	if query.Limit > 0 {
		opts = opts.SetLimit(query.Limit)
	}

	var docs []*document.ProfileDocument
	if err := d.findManyByFilter(ctx, filter, opts, &docs); err != nil {
		return nil, err
	}
	return d.mapper.ToEntities(docs), nil
}

// ExistsByEmail checks if a profile with the given email exists.
func (d *profileDAO) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return d.existsBy(ctx, "email", entity.NormalizeEmail(email))
}

// Count returns the total number of profiles.
func (d *profileDAO) Count(ctx context.Context) (int64, error) {
	return d.count(ctx, bson.M{})
}

// EnsureIndexes creates the unique email index the registration flow relies
// on, plus the indexes backing the common discovery filters.
func (d *profileDAO) EnsureIndexes(ctx context.Context) error {
	_, err := d.getCollection().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "department", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "skills.name", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "name", Value: "text"},
				{Key: "job_title", Value: "text"},
				{Key: "company", Value: "text"},
				{Key: "skills.name", Value: "text"},
			},
			Options: options.Index().SetName("profile_text_search"),
		},
	})
	return err
}
