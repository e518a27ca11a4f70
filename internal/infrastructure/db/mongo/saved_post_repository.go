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

	"github.com/ashuestate/realty-api/internal/core/domain"
)

const savedPostsCollection = "saved_posts"

// SavedPostRepository persists user/post bookmark edges.
type SavedPostRepository struct {
	coll *mongo.Collection
}

func NewSavedPostRepository(db *mongo.Database) *SavedPostRepository {
	return &SavedPostRepository{coll: db.Collection(savedPostsCollection)}
}

type mongoSavedPost struct {
	UserID    primitive.ObjectID `bson:"user_id"`
	PostID    primitive.ObjectID `bson:"post_id"`
	CreatedAt int64              `bson:"created_at"`
}

// EnsureIndexes creates the unique (user_id, post_id) index so the same post
// cannot be saved twice by one user.
func (r *SavedPostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "post_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *SavedPostRepository) Find(ctx context.Context, userID, postID string) (*domain.SavedPost, error) {
	filter, err := edgeFilter(userID, postID)
	if err != nil {
		return nil, nil
	}

	var ms mongoSavedPost
	if err := r.coll.FindOne(ctx, filter).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find saved post: %w", err)
	}
	return &domain.SavedPost{
		UserID:    ms.UserID.Hex(),
		PostID:    ms.PostID.Hex(),
		CreatedAt: unixToTime(ms.CreatedAt),
	}, nil
}

func (r *SavedPostRepository) Create(ctx context.Context, saved *domain.SavedPost) error {
	userOID, err := primitive.ObjectIDFromHex(saved.UserID)
	if err != nil {
		return fmt.Errorf("save post: bad user id: %w", err)
	}
	postOID, err := primitive.ObjectIDFromHex(saved.PostID)
	if err != nil {
		return fmt.Errorf("save post: bad post id: %w", err)
	}

	doc := mongoSavedPost{UserID: userOID, PostID: postOID, CreatedAt: saved.CreatedAt.Unix()}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		// Concurrent double-save hits the unique index; treat as saved.
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("save post: %w", err)
	}
	return nil
}

func (r *SavedPostRepository) Delete(ctx context.Context, userID, postID string) error {
	filter, err := edgeFilter(userID, postID)
	if err != nil {
		return nil
	}
	if _, err := r.coll.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("unsave post: %w", err)
	}
	return nil
}

func (r *SavedPostRepository) ListByUser(ctx context.Context, userID string) ([]*domain.SavedPost, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	cur, err := r.coll.Find(ctx, bson.M{"user_id": oid})
	if err != nil {
		return nil, fmt.Errorf("list saved posts: %w", err)
	}
	defer cur.Close(ctx)

	var edges []*domain.SavedPost
	for cur.Next(ctx) {
		var ms mongoSavedPost
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode saved post: %w", err)
		}
		edges = append(edges, &domain.SavedPost{
			UserID:    ms.UserID.Hex(),
			PostID:    ms.PostID.Hex(),
			CreatedAt: unixToTime(ms.CreatedAt),
		})
	}
	return edges, cur.Err()
}

func (r *SavedPostRepository) DeleteByUser(ctx context.Context, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil
	}
	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": oid}); err != nil {
		return fmt.Errorf("delete saved posts: %w", err)
	}
	return nil
}

func edgeFilter(userID, postID string) (bson.M, error) {
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	postOID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, err
	}
	return bson.M{"user_id": userOID, "post_id": postOID}, nil
}
