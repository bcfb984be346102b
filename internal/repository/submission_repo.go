package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hemangjain17/TruthLens-backend/internal/models"
)

type SubmissionRepo struct {
	coll *mongo.Collection
}

func NewSubmissionRepo(coll *mongo.Collection) *SubmissionRepo {
	return &SubmissionRepo{coll: coll}
}

// EnsureIndexes creates the compound index backing the by-email,
// newest-first queries.
func (r *SubmissionRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

// Insert persists one submission and returns its id as a hex string.
func (r *SubmissionRepo) Insert(ctx context.Context, sub *models.Submission) (string, error) {
	res, err := r.coll.InsertOne(ctx, sub)
	if err != nil {
		return "", fmt.Errorf("insert submission: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindLatestByEmail returns the submission with the greatest createdAt
// for the given email, or (nil, nil) when none exists.
func (r *SubmissionRepo) FindLatestByEmail(ctx context.Context, email string) (*models.Submission, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var sub models.Submission
	err := r.coll.FindOne(ctx, bson.M{"email": email}, opts).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find latest submission: %w", err)
	}
	sub.ID = sub.OID.Hex()
	return &sub, nil
}

// FindTopByEmail returns up to limit submissions for the given email,
// newest first. Ties in createdAt come back in unspecified order. The
// result is an empty slice, not nil, when no records match.
func (r *SubmissionRepo) FindTopByEmail(ctx context.Context, email string, limit int) ([]models.Submission, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("find submissions: %w", err)
	}
	defer cursor.Close(ctx)

	subs := make([]models.Submission, 0, limit)
	for cursor.Next(ctx) {
		var sub models.Submission
		if err := cursor.Decode(&sub); err != nil {
			return nil, fmt.Errorf("decode submission: %w", err)
		}
		sub.ID = sub.OID.Hex()
		subs = append(subs, sub)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}
	return subs, nil
}
