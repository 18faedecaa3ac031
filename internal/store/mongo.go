package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mahamudulhasan-me/bristo-boss-server/internal/model"
)

// NewMongo builds a Store over the named collections of the given database.
func NewMongo(db *mongo.Database) *Store {
	return &Store{
		Users:    &mongoUsers{col: db.Collection("users")},
		Menu:     &mongoMenu{col: db.Collection("menu")},
		Reviews:  &mongoReviews{col: db.Collection("review")},
		Carts:    &mongoCarts{col: db.Collection("carts")},
		Payments: &mongoPayments{col: db.Collection("payments")},
	}
}

// objectID parses a client-supplied hex id. Malformed ids behave like
// missing ones: the caller sees zero affected documents, not an error.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}

type mongoUsers struct {
	col *mongo.Collection
}

func (s *mongoUsers) All(ctx context.Context) ([]model.User, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUsers) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	return s.findOne(ctx, bson.M{"userUid": uid})
}

func (s *mongoUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *mongoUsers) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUsers) Insert(ctx context.Context, user model.User) (string, error) {
	return insertOne(ctx, s.col, user)
}

func (s *mongoUsers) SetRole(ctx context.Context, id, role string) (int64, error) {
	oid, ok := objectID(id)
	if !ok {
		return 0, nil
	}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *mongoUsers) Delete(ctx context.Context, id string) (int64, error) {
	return deleteByID(ctx, s.col, id)
}

func (s *mongoUsers) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}

type mongoMenu struct {
	col *mongo.Collection
}

func (s *mongoMenu) All(ctx context.Context) ([]model.MenuItem, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var items []model.MenuItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoMenu) Insert(ctx context.Context, item model.MenuItem) (string, error) {
	return insertOne(ctx, s.col, item)
}

func (s *mongoMenu) Delete(ctx context.Context, id string) (int64, error) {
	return deleteByID(ctx, s.col, id)
}

func (s *mongoMenu) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}

type mongoReviews struct {
	col *mongo.Collection
}

func (s *mongoReviews) All(ctx context.Context) ([]model.Review, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var reviews []model.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

type mongoCarts struct {
	col *mongo.Collection
}

func (s *mongoCarts) Insert(ctx context.Context, item model.CartItem) (string, error) {
	return insertOne(ctx, s.col, item)
}

func (s *mongoCarts) FindByOwner(ctx context.Context, uid string) ([]model.CartItem, error) {
	cur, err := s.col.Find(ctx, bson.M{"userUid": uid})
	if err != nil {
		return nil, err
	}

	var items []model.CartItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoCarts) Delete(ctx context.Context, id string) (int64, error) {
	return deleteByID(ctx, s.col, id)
}

func (s *mongoCarts) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, ok := objectID(id); ok {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return 0, nil
	}

	res, err := s.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

type mongoPayments struct {
	col *mongo.Collection
}

func (s *mongoPayments) Insert(ctx context.Context, payment model.Payment) (string, error) {
	return insertOne(ctx, s.col, payment)
}

func (s *mongoPayments) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}

func (s *mongoPayments) TotalAmount(ctx context.Context) (float64, error) {
	cur, err := s.col.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	})
	if err != nil {
		return 0, err
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

func insertOne(ctx context.Context, col *mongo.Collection, doc interface{}) (string, error) {
	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, id string) (int64, error) {
	oid, ok := objectID(id)
	if !ok {
		return 0, nil
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
