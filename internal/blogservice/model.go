package blogservice

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MamunHossain005/blog-website-server/internal/common"
)

type BlogModel struct {
	coll *mongo.Collection
}

func NewBlogModel(db *mongo.Database) *BlogModel {
	return &BlogModel{coll: db.Collection(common.BlogCollection)}
}

func (m *BlogModel) Insert(ctx context.Context, blog *Blog) (*InsertResult, error) {
	res, err := m.coll.InsertOne(ctx, blog)
	if err != nil {
		return nil, err
	}

	return &InsertResult{
		Acknowledged: true,
		InsertedID:   res.InsertedID.(primitive.ObjectID),
	}, nil
}

// Upsert replaces the mutable fields of the blog with the given id, creating
// the document when it does not exist. The id never changes.
func (m *BlogModel) Upsert(ctx context.Context, id primitive.ObjectID, blog *Blog) (*UpsertResult, error) {
	update := bson.M{
		"$set": bson.M{
			"title":             blog.Title,
			"image":             blog.Image,
			"short_description": blog.ShortDescription,
			"long_description":  blog.LongDescription,
			"category":          blog.Category,
			"blogger_name":      blog.BloggerName,
			"blogger_email":     blog.BloggerEmail,
			"date":              blog.Date,
		},
	}

	res, err := m.coll.UpdateByID(ctx, id, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}

	return &UpsertResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (m *BlogModel) GetByID(ctx context.Context, id primitive.ObjectID) (*Blog, error) {
	var blog Blog

	err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &blog, nil
}

func (m *BlogModel) GetRecent(ctx context.Context, limit int64) ([]Blog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	return m.find(ctx, bson.M{}, opts)
}

func (m *BlogModel) GetAll(ctx context.Context) ([]Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	return m.find(ctx, bson.M{}, opts)
}

// GetPage returns one page of the filtered collection. Skip and limit apply
// on every branch, including the combined category + text-search filter.
func (m *BlogModel) GetPage(ctx context.Context, filter PageFilter) ([]Blog, error) {
	query := bson.M{}

	switch {
	case filter.Category == "" || filter.Category == CategoryAll:
		if filter.Title != "" {
			query = bson.M{"$text": bson.M{"$search": filter.Title}}
		}
	case filter.Title != "":
		query = bson.M{"$and": bson.A{
			bson.M{"category": filter.Category},
			bson.M{"$text": bson.M{"$search": filter.Title}},
		}}
	default:
		query = bson.M{"category": primitive.Regex{Pattern: filter.Category, Options: "i"}}
	}

	opts := options.Find().SetSkip(filter.Skip).SetLimit(filter.Limit)

	return m.find(ctx, query, opts)
}

// GetFeatured ranks blogs by the number of whitespace-delimited words in the
// long description and keeps the top ten. A secondary sort reorders the
// selected ten only; it never changes which blogs are picked.
func (m *BlogModel) GetFeatured(ctx context.Context, sort SortSpec) ([]Blog, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{
			"wordCount": bson.M{"$size": bson.M{"$split": bson.A{"$long_description", " "}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "wordCount", Value: -1}}}},
		{{Key: "$project", Value: bson.M{"wordCount": 0}}},
		{{Key: "$limit", Value: featuredLimit}},
	}

	if sort.Field != "" && sort.Direction != 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: sort.Field, Value: sort.Direction}}}})
	}

	cursor, err := m.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blogs []Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (m *BlogModel) Count(ctx context.Context) (int64, error) {
	return m.coll.EstimatedDocumentCount(ctx)
}

func (m *BlogModel) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]Blog, error) {
	cursor, err := m.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blogs []Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}

	return blogs, nil
}
