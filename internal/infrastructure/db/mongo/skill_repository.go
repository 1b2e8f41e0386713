package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillswap/skillswap-api/internal/core/domain"
	"github.com/skillswap/skillswap-api/internal/core/ports"
)

const collectionSkills = "skills"

type SkillRepository struct {
	col *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{col: db.Collection(collectionSkills)}
}

type skillDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	Level       string             `bson:"level"`
	IsOffering  bool               `bson:"is_offering"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d skillDocument) toDomain() *domain.Skill {
	return &domain.Skill{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Level:       domain.SkillLevel(d.Level),
		IsOffering:  d.IsOffering,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

// writableFields is the $set document for updates; _id and created_at are immutable.
func (d skillDocument) writableFields() bson.M {
	return bson.M{
		"user_id":     d.UserID,
		"title":       d.Title,
		"description": d.Description,
		"category":    d.Category,
		"level":       d.Level,
		"is_offering": d.IsOffering,
		"updated_at":  d.UpdatedAt,
	}
}

func newSkillDocument(s *domain.Skill) skillDocument {
	return skillDocument{
		UserID:      s.UserID,
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category,
		Level:       string(s.Level),
		IsOffering:  s.IsOffering,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// List returns a page of skills matching filter and the total match count.
func (r *SkillRepository) List(ctx context.Context, f ports.SkillFilter) ([]*domain.Skill, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := skillListFilter(f)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count skills: %w", err)
	}

	cur, err := r.col.Find(ctx, filter, findOptions(f.Page.Offset(), f.Page.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("find skills: %w", err)
	}

	var docs []skillDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode skills: %w", err)
	}

	out := make([]*domain.Skill, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, total, nil
}

func skillListFilter(f ports.SkillFilter) bson.M {
	filter := bson.M{}
	if f.UserID != "" {
		filter["user_id"] = f.UserID
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Level != "" {
		filter["level"] = f.Level
	}
	if f.IsOffering != nil {
		filter["is_offering"] = *f.IsOffering
	}
	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}
	return filter
}

func (r *SkillRepository) FindByID(ctx context.Context, id string) (*domain.Skill, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrSkillNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var d skillDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, fmt.Errorf("find skill: %w", err)
	}
	return d.toDomain(), nil
}

func (r *SkillRepository) Create(ctx context.Context, s *domain.Skill) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, newSkillDocument(s))
	if err != nil {
		return fmt.Errorf("insert skill: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid.Hex()
	}
	return nil
}

func (r *SkillRepository) Update(ctx context.Context, s *domain.Skill) error {
	oid, ok := parseID(s.ID)
	if !ok {
		return domain.ErrSkillNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": newSkillDocument(s).writableFields()})
	if err != nil {
		return fmt.Errorf("update skill: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSkillNotFound
	}
	return nil
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return domain.ErrSkillNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSkillNotFound
	}
	return nil
}

func (r *SkillRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("skill indexes: %w", err)
	}
	return nil
}
