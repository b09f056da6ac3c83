package mongostore

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/dmitrijs2005/userstore/user"
)

func newMock(t *testing.T) *mtest.T {
	t.Helper()
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestFindOne_Found(t *testing.T) {
	mt := newMock(t)

	mt.Run("decodes the matched document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		first := mtest.CreateCursorResponse(1, "userstore.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "realm", Value: "_default"},
			{Key: "username", Value: "bar"},
			{Key: "password", Value: "hash"},
		})
		killCursors := mtest.CreateCursorResponse(0, "userstore.users", mtest.NextBatch)
		mt.AddMockResponses(first, killCursors)

		st := New(mt.Coll)
		rec, err := st.FindOne(context.Background(), "_default", "bar")
		if err != nil {
			mt.Fatalf("FindOne error: %v", err)
		}
		if rec.ID != id.Hex() || rec.Realm != "_default" || rec.Username != "bar" || rec.Password != "hash" {
			mt.Fatalf("unexpected record: %+v", rec)
		}
	})
}

func TestFindOne_NotFound(t *testing.T) {
	mt := newMock(t)

	mt.Run("empty cursor maps to ErrNotFound", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "userstore.users", mtest.FirstBatch))

		st := New(mt.Coll)
		_, err := st.FindOne(context.Background(), "_default", "ghost")
		if !errors.Is(err, user.ErrNotFound) {
			mt.Fatalf("want user.ErrNotFound, got %v", err)
		}
	})
}

func TestInsert_AssignsObjectIDHex(t *testing.T) {
	mt := newMock(t)

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		st := New(mt.Coll)
		rec := &user.Record{Realm: "_default", Username: "bar"}
		if err := st.Insert(context.Background(), rec); err != nil {
			mt.Fatalf("Insert error: %v", err)
		}
		if rec.ID == "" {
			mt.Fatalf("expected driver-assigned id on record")
		}
	})
}

func TestInsert_DuplicateKeySurfacedUnchanged(t *testing.T) {
	mt := newMock(t)

	mt.Run("unique index violation", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: userstore.users index: realm_username_unique",
		}))

		st := New(mt.Coll)
		err := st.Insert(context.Background(), &user.Record{Realm: "_default", Username: "bar"})
		if err == nil || !mongo.IsDuplicateKeyError(err) {
			mt.Fatalf("expected duplicate key error passed through, got %v", err)
		}
	})
}

func TestUpdatePassword_MatchedCount(t *testing.T) {
	mt := newMock(t)

	mt.Run("matched one", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		st := New(mt.Coll)
		matched, err := st.UpdatePassword(context.Background(), "_default", "bar", "hash")
		if err != nil {
			mt.Fatalf("UpdatePassword error: %v", err)
		}
		if matched != 1 {
			mt.Fatalf("unexpected matched count: %d", matched)
		}
	})

	mt.Run("matched zero", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		st := New(mt.Coll)
		matched, err := st.UpdatePassword(context.Background(), "other", "bar", "hash")
		if err != nil {
			mt.Fatalf("UpdatePassword error: %v", err)
		}
		if matched != 0 {
			mt.Fatalf("unexpected matched count: %d", matched)
		}
	})
}

func TestEnsureIndexes(t *testing.T) {
	mt := newMock(t)

	mt.Run("createIndexes issued", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		st := New(mt.Coll)
		if err := st.EnsureIndexes(context.Background()); err != nil {
			mt.Fatalf("EnsureIndexes error: %v", err)
		}
	})
}
