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
	"github.com/ashuestate/realty-api/internal/core/ports"
)

const (
	postsCollection       = "posts"
	postDetailsCollection = "post_details"
)

// PostRepository persists listings and their detail documents.
type PostRepository struct {
	posts   *mongo.Collection
	details *mongo.Collection
	saved   *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		posts:   db.Collection(postsCollection),
		details: db.Collection(postDetailsCollection),
		saved:   db.Collection(savedPostsCollection),
	}
}

type mongoPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID   primitive.ObjectID `bson:"owner_id"`
	Title     string             `bson:"title"`
	Price     int64              `bson:"price"`
	Address   string             `bson:"address"`
	City      string             `bson:"city"`
	Bedroom   int                `bson:"bedroom"`
	Bathroom  int                `bson:"bathroom"`
	Type      string             `bson:"type"`
	Property  string             `bson:"property"`
	Latitude  float64            `bson:"latitude"`
	Longitude float64            `bson:"longitude"`
	Images    []string           `bson:"images"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

type mongoPostDetail struct {
	PostID      primitive.ObjectID `bson:"post_id"`
	Description string             `bson:"description"`
	Utilities   string             `bson:"utilities,omitempty"`
	Pet         string             `bson:"pet,omitempty"`
	Income      string             `bson:"income,omitempty"`
	SizeSqm     int                `bson:"size_sqm,omitempty"`
	School      int                `bson:"school,omitempty"`
	Bus         int                `bson:"bus,omitempty"`
	Restaurant  int                `bson:"restaurant,omitempty"`
}

func (mp mongoPost) toDomain() *domain.Post {
	return &domain.Post{
		ID:        mp.ID.Hex(),
		OwnerID:   mp.OwnerID.Hex(),
		Title:     mp.Title,
		Price:     mp.Price,
		Address:   mp.Address,
		City:      mp.City,
		Bedroom:   mp.Bedroom,
		Bathroom:  mp.Bathroom,
		Type:      mp.Type,
		Property:  mp.Property,
		Latitude:  mp.Latitude,
		Longitude: mp.Longitude,
		Images:    mp.Images,
		CreatedAt: unixToTime(mp.CreatedAt),
		UpdatedAt: unixToTime(mp.UpdatedAt),
	}
}

// EnsureIndexes creates the lookup indexes for listings and details.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.posts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	}); err != nil {
		return err
	}
	_, err := r.details.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "post_id", Value: 1}}},
	})
	return err
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post, detail *domain.PostDetail) (*domain.Post, error) {
	ownerOID, err := primitive.ObjectIDFromHex(post.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("create post: bad owner id: %w", err)
	}

	doc := mongoPost{
		OwnerID:   ownerOID,
		Title:     post.Title,
		Price:     post.Price,
		Address:   post.Address,
		City:      post.City,
		Bedroom:   post.Bedroom,
		Bathroom:  post.Bathroom,
		Type:      post.Type,
		Property:  post.Property,
		Latitude:  post.Latitude,
		Longitude: post.Longitude,
		Images:    post.Images,
		CreatedAt: post.CreatedAt.Unix(),
		UpdatedAt: post.UpdatedAt.Unix(),
	}

	res, err := r.posts.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	oid := res.InsertedID.(primitive.ObjectID)

	if detail != nil {
		detailDoc := mongoPostDetail{
			PostID:      oid,
			Description: detail.Description,
			Utilities:   detail.Utilities,
			Pet:         detail.Pet,
			Income:      detail.Income,
			SizeSqm:     detail.SizeSqm,
			School:      detail.School,
			Bus:         detail.Bus,
			Restaurant:  detail.Restaurant,
		}
		if _, err := r.details.InsertOne(ctx, detailDoc); err != nil {
			return nil, fmt.Errorf("insert post detail: %w", err)
		}
	}

	created := *post
	created.ID = oid.Hex()
	return &created, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	var mp mongoPost
	if err := r.posts.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PostRepository) FindDetail(ctx context.Context, postID string) (*domain.PostDetail, error) {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	var md mongoPostDetail
	if err := r.details.FindOne(ctx, bson.M{"post_id": oid}).Decode(&md); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post detail: %w", err)
	}
	return &domain.PostDetail{
		PostID:      md.PostID.Hex(),
		Description: md.Description,
		Utilities:   md.Utilities,
		Pet:         md.Pet,
		Income:      md.Income,
		SizeSqm:     md.SizeSqm,
		School:      md.School,
		Bus:         md.Bus,
		Restaurant:  md.Restaurant,
	}, nil
}

func (r *PostRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.find(ctx, bson.M{"owner_id": oid})
}

// List retrieves posts matching the public search filter. City, type, and
// property match case-insensitively; bedroom and bathroom are minimums.
func (r *PostRepository) List(ctx context.Context, filter ports.ListPostsFilter) ([]*domain.Post, error) {
	query := bson.M{}
	if filter.City != "" {
		query["city"] = bson.M{"$regex": filter.City, "$options": "i"}
	}
	if filter.Type != "" {
		query["type"] = bson.M{"$regex": filter.Type, "$options": "i"}
	}
	if filter.Property != "" {
		query["property"] = bson.M{"$regex": filter.Property, "$options": "i"}
	}
	if filter.Bedroom > 0 {
		query["bedroom"] = bson.M{"$gte": filter.Bedroom}
	}
	if filter.Bathroom > 0 {
		query["bathroom"] = bson.M{"$gte": filter.Bathroom}
	}
	if filter.MinPrice > 0 || filter.MaxPrice > 0 {
		price := bson.M{"$gte": filter.MinPrice}
		if filter.MaxPrice > 0 {
			price["$lte"] = filter.MaxPrice
		}
		query["price"] = price
	}

	return r.find(ctx, query)
}

func (r *PostRepository) find(ctx context.Context, query bson.M) ([]*domain.Post, error) {
	cur, err := r.posts.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	posts := []*domain.Post{}
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, mp.toDomain())
	}
	return posts, cur.Err()
}

func (r *PostRepository) Update(ctx context.Context, id string, post ports.PostUpdate, detail *ports.PostDetailUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	setField(set, "title", post.Title)
	setField(set, "price", post.Price)
	setField(set, "address", post.Address)
	setField(set, "city", post.City)
	setField(set, "bedroom", post.Bedroom)
	setField(set, "bathroom", post.Bathroom)
	setField(set, "type", post.Type)
	setField(set, "property", post.Property)
	setField(set, "latitude", post.Latitude)
	setField(set, "longitude", post.Longitude)
	setField(set, "images", post.Images)

	res, err := r.posts.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}

	if detail == nil {
		return nil
	}

	detailSet := bson.M{}
	setField(detailSet, "description", detail.Description)
	setField(detailSet, "utilities", detail.Utilities)
	setField(detailSet, "pet", detail.Pet)
	setField(detailSet, "income", detail.Income)
	setField(detailSet, "size_sqm", detail.SizeSqm)
	setField(detailSet, "school", detail.School)
	setField(detailSet, "bus", detail.Bus)
	setField(detailSet, "restaurant", detail.Restaurant)
	if len(detailSet) == 0 {
		return nil
	}

	// Upsert: a post created before details were mandatory may not have one.
	_, err = r.details.UpdateOne(ctx, bson.M{"post_id": oid}, bson.M{"$set": detailSet},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("update post detail: %w", err)
	}
	return nil
}

// Delete removes the post and cascades to its detail document and every
// saved-post edge referencing it.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	res, err := r.posts.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}

	if _, err := r.details.DeleteOne(ctx, bson.M{"post_id": oid}); err != nil {
		return fmt.Errorf("delete post detail: %w", err)
	}
	if _, err := r.saved.DeleteMany(ctx, bson.M{"post_id": oid}); err != nil {
		return fmt.Errorf("delete saved posts: %w", err)
	}
	return nil
}

// setField adds a $set entry when the pointer is non-nil.
func setField[T any](set bson.M, key string, v *T) {
	if v != nil {
		set[key] = *v
	}
}
