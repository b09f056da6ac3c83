// Package mongostore implements user.Store on a MongoDB collection.
package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmitrijs2005/userstore/user"
)

// document is the on-disk layout: realm, username, and the password hash,
// plus the driver-assigned object id.
type document struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Realm    string             `bson:"realm"`
	Username string             `bson:"username"`
	Password string             `bson:"password,omitempty"`
}

// Store wraps a collection holding one document per (realm, username) pair.
type Store struct {
	coll *mongo.Collection
}

func New(coll *mongo.Collection) *Store {
	return &Store{coll: coll}
}

// EnsureIndexes creates the unique compound index on (realm, username) that
// backs the uniqueness guarantee under concurrent registrations. Call it once
// at startup; creating an index that already exists is a no-op server-side.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "realm", Value: 1}, {Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("realm_username_unique"),
	})
	return err
}

func (s *Store) FindOne(ctx context.Context, realm, username string) (*user.Record, error) {
	filter := bson.D{{Key: "realm", Value: realm}, {Key: "username", Value: username}}

	doc := &document{}
	if err := s.coll.FindOne(ctx, filter).Decode(doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	return &user.Record{
		ID:       doc.ID.Hex(),
		Realm:    doc.Realm,
		Username: doc.Username,
		Password: doc.Password,
	}, nil
}

func (s *Store) Insert(ctx context.Context, rec *user.Record) error {
	doc := &document{Realm: rec.Realm, Username: rec.Username, Password: rec.Password}

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		rec.ID = id.Hex()
	}
	return nil
}

func (s *Store) UpdatePassword(ctx context.Context, realm, username, hash string) (int64, error) {
	filter := bson.D{{Key: "realm", Value: realm}, {Key: "username", Value: username}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "password", Value: hash}}}}

	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
