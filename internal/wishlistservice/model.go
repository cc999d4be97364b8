package wishlistservice

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MamunHossain005/blog-website-server/internal/common"
)

type WishlistModel struct {
	coll *mongo.Collection
}

func NewWishlistModel(db *mongo.Database) *WishlistModel {
	return &WishlistModel{coll: db.Collection(common.WishlistCollection)}
}

// GetByEmail returns the entries saved by the given user, newest first. An
// empty email matches the whole collection.
func (m *WishlistModel) GetByEmail(ctx context.Context, email string) ([]WishlistBlog, error) {
	query := bson.M{}
	if email != "" {
		query = bson.M{"email": email}
	}

	opts := options.Find().SetSort(bson.D{{Key: "wishlistDate", Value: -1}})

	cursor, err := m.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []WishlistBlog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (m *WishlistModel) GetByTitle(ctx context.Context, title string) (*WishlistBlog, error) {
	var entry WishlistBlog

	err := m.coll.FindOne(ctx, bson.M{"title": title}).Decode(&entry)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &entry, nil
}

func (m *WishlistModel) Insert(ctx context.Context, entry *WishlistBlog) (*InsertResult, error) {
	res, err := m.coll.InsertOne(ctx, entry)
	if err != nil {
		return nil, err
	}

	return &InsertResult{
		Acknowledged: true,
		InsertedID:   res.InsertedID.(primitive.ObjectID),
	}, nil
}

func (m *WishlistModel) DeleteByID(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}

	return &DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}, nil
}
