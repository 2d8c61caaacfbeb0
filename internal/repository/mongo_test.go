package repository

import (
	"context"
	"errors"
	"testing"

	"octofit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestIDCandidates(t *testing.T) {
	oid := primitive.NewObjectID()

	candidates := idCandidates(oid.Hex())
	require.Len(t, candidates, 2)
	assert.Equal(t, oid.Hex(), candidates[0])
	assert.Equal(t, oid, candidates[1])

	assert.Equal(t, bson.A{"team_marvel"}, idCandidates("team_marvel"))
	assert.Equal(t, bson.A{"12345"}, idCandidates("12345"))
}

func TestMongoFilterExpandsReferences(t *testing.T) {
	oid := primitive.NewObjectID()

	filter := mongoFilter(map[string]any{
		"user_id":       oid.Hex(),
		"activity_type": "Running",
		"rank":          1,
	})

	assert.Equal(t, bson.M{"$in": bson.A{oid.Hex(), oid}}, filter["user_id"])
	assert.Equal(t, "Running", filter["activity_type"])
	assert.Equal(t, 1, filter["rank"])
	assert.Empty(t, mongoFilter(nil))
}

func TestMongoError(t *testing.T) {
	duplicate := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}

	assert.True(t, errors.Is(mongoError("insert users", duplicate), ErrConflict))
	assert.True(t, errors.Is(mongoError("reload users", mongo.ErrNoDocuments), ErrNotFound))

	other := mongoError("find users", errors.New("connection reset"))
	assert.False(t, errors.Is(other, ErrConflict))
	assert.False(t, errors.Is(other, ErrNotFound))
	assert.Contains(t, other.Error(), "connection reset")
}

func TestCanonicalID(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), canonicalID(oid))
	assert.Equal(t, "team_dc", canonicalID("team_dc"))
}

const teamsNS = "octofit_db.teams"

func teamDoc(id any, name string) bson.D {
	return bson.D{{Key: "_id", Value: id}, {Key: "name", Value: name}}
}

func startedCommand(mt *mtest.T, name string) *event.CommandStartedEvent {
	for _, evt := range mt.GetAllStartedEvents() {
		if evt.CommandName == name {
			return evt
		}
	}
	return nil
}

func TestMongoStoreGet(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("object id rendered as hex", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, teamsNS, mtest.FirstBatch, teamDoc(oid, "Team Marvel")))

		team, err := NewMongoStore[models.Team](mt.DB).Get(ctx, oid.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), team.ID)
		assert.Equal(mt, "Team Marvel", team.Name)

		find := startedCommand(mt, "find")
		require.NotNil(mt, find)
		candidates, err := find.Command.Lookup("filter", "_id", "$in").Array().Values()
		require.NoError(mt, err)
		assert.Len(mt, candidates, 2)
		assert.Equal(mt, int64(2), find.Command.Lookup("limit").AsInt64())
	})

	mt.Run("string id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, teamsNS, mtest.FirstBatch, teamDoc("team_dc", "Team DC")))

		team, err := NewMongoStore[models.Team](mt.DB).Get(ctx, "team_dc")
		require.NoError(mt, err)
		assert.Equal(mt, "team_dc", team.ID)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, teamsNS, mtest.FirstBatch))

		_, err := NewMongoStore[models.Team](mt.DB).Get(ctx, "team_missing")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("string and object id both match", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, teamsNS, mtest.FirstBatch,
			teamDoc(oid.Hex(), "Team Marvel"),
			teamDoc(oid, "Team DC"),
		))

		_, err := NewMongoStore[models.Team](mt.DB).Get(ctx, oid.Hex())
		assert.ErrorIs(mt, err, ErrAmbiguousMatch)
	})
}

func TestMongoStoreCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("generated id returned as hex", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		team := &models.Team{Name: "Team Marvel"}
		require.NoError(mt, NewMongoStore[models.Team](mt.DB).Create(ctx, team))
		assert.True(mt, primitive.IsValidObjectID(team.ID), team.ID)
	})

	mt.Run("client id kept", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		team := &models.Team{ID: "team_marvel", Name: "Team Marvel"}
		require.NoError(mt, NewMongoStore[models.Team](mt.DB).Create(ctx, team))
		assert.Equal(mt, "team_marvel", team.ID)
	})

	mt.Run("duplicate key is a conflict", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: octofit_db.teams index: _id_",
		}))

		err := NewMongoStore[models.Team](mt.DB).Create(ctx, &models.Team{ID: "team_marvel", Name: "Team Marvel"})
		assert.ErrorIs(mt, err, ErrConflict)
	})
}

func TestMongoStoreUpdate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("sets fields but never _id", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, teamsNS, mtest.FirstBatch, bson.D{{Key: "_id", Value: oid}}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, teamsNS, mtest.FirstBatch, teamDoc(oid, "Team Avengers")),
		)

		updated, err := NewMongoStore[models.Team](mt.DB).Update(ctx, oid.Hex(), map[string]any{
			"name": "Team Avengers",
			"id":   "hijack",
			"_id":  "hijack",
		})
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), updated.ID)
		assert.Equal(mt, "Team Avengers", updated.Name)

		update := startedCommand(mt, "update")
		require.NotNil(mt, update)
		var cmd struct {
			Updates []struct {
				Q bson.Raw `bson:"q"`
				U bson.Raw `bson:"u"`
			} `bson:"updates"`
		}
		require.NoError(mt, bson.Unmarshal(update.Command, &cmd))
		require.Len(mt, cmd.Updates, 1)
		assert.Equal(mt, oid, cmd.Updates[0].Q.Lookup("_id").ObjectID())

		set := cmd.Updates[0].U.Lookup("$set").Document()
		assert.Equal(mt, "Team Avengers", set.Lookup("name").StringValue())
		_, err = set.LookupErr("_id")
		assert.Error(mt, err)
		_, err = set.LookupErr("id")
		assert.Error(mt, err)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, teamsNS, mtest.FirstBatch))

		_, err := NewMongoStore[models.Team](mt.DB).Update(ctx, "team_missing", map[string]any{"name": "x"})
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("ambiguous id", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, teamsNS, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: oid.Hex()}},
			bson.D{{Key: "_id", Value: oid}},
		))

		_, err := NewMongoStore[models.Team](mt.DB).Update(ctx, oid.Hex(), map[string]any{"name": "x"})
		assert.ErrorIs(mt, err, ErrAmbiguousMatch)
		assert.Nil(mt, startedCommand(mt, "update"))
	})

	mt.Run("duplicate key is a conflict", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, teamsNS, mtest.FirstBatch, bson.D{{Key: "_id", Value: "u1"}}),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "E11000 duplicate key error"}),
		)

		_, err := NewMongoStore[models.User](mt.DB).Update(ctx, "u1", map[string]any{"email": "ironman@marvel.com"})
		assert.ErrorIs(mt, err, ErrConflict)
	})
}

func TestMongoStoreDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("deletes by stored key", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, teamsNS, mtest.FirstBatch, bson.D{{Key: "_id", Value: oid}}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		require.NoError(mt, NewMongoStore[models.Team](mt.DB).Delete(ctx, oid.Hex()))
	})

	mt.Run("unknown id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, teamsNS, mtest.FirstBatch))

		err := NewMongoStore[models.Team](mt.DB).Delete(ctx, "team_missing")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("removed concurrently", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, teamsNS, mtest.FirstBatch, bson.D{{Key: "_id", Value: "team_dc"}}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		err := NewMongoStore[models.Team](mt.DB).Delete(ctx, "team_dc")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}
