package repository

import (
	"context"
	"errors"
	"fmt"

	"octofit/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps one record type in one collection. Identifiers leave the
// store as strings: ObjectIDs are rendered as hex, string ids pass through.
type MongoStore[T any, PT models.DocumentPtr[T]] struct {
	coll *mongo.Collection
}

func NewMongoStore[T any, PT models.DocumentPtr[T]](db *mongo.Database) *MongoStore[T, PT] {
	var zero T
	return &MongoStore[T, PT]{coll: db.Collection(PT(&zero).TableName())}
}

// idCandidates lists the stored _id values an external id may stand for:
// the string itself and, when it is valid hex, the ObjectID.
func idCandidates(id string) bson.A {
	candidates := bson.A{id}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		candidates = append(candidates, oid)
	}
	return candidates
}

func matchID(id string) bson.M {
	return bson.M{"_id": bson.M{"$in": idCandidates(id)}}
}

// mongoFilter expands reference fields so documents holding either form of
// an id still match.
func mongoFilter(filter map[string]any) bson.M {
	out := bson.M{}
	for key, value := range filter {
		if s, ok := value.(string); ok && isReference(key) {
			out[key] = bson.M{"$in": idCandidates(s)}
			continue
		}
		out[key] = value
	}
	return out
}

func mongoError(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w: %v", op, ErrConflict, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *MongoStore[T, PT]) Find(ctx context.Context, q Query) ([]T, error) {
	opts := options.Find()
	if q.SortBy != "" {
		direction := 1
		if q.Descending {
			direction = -1
		}
		opts.SetSort(bson.D{{Key: q.SortBy, Value: direction}, {Key: "_id", Value: 1}})
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cursor, err := s.coll.Find(ctx, mongoFilter(q.Filter), opts)
	if err != nil {
		return nil, mongoError("find "+s.coll.Name(), err)
	}
	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, mongoError("decode "+s.coll.Name(), err)
	}
	return out, nil
}

func (s *MongoStore[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	cursor, err := s.coll.Find(ctx, matchID(id), options.Find().SetLimit(2))
	if err != nil {
		return nil, mongoError("get "+s.coll.Name(), err)
	}
	var found []T
	if err := cursor.All(ctx, &found); err != nil {
		return nil, mongoError("decode "+s.coll.Name(), err)
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, s.coll.Name(), id)
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("%w: %s %s", ErrAmbiguousMatch, s.coll.Name(), id)
	}
}

// resolve returns the stored _id value for an external id.
func (s *MongoStore[T, PT]) resolve(ctx context.Context, id string) (any, error) {
	opts := options.Find().SetLimit(2).SetProjection(bson.M{"_id": 1})
	cursor, err := s.coll.Find(ctx, matchID(id), opts)
	if err != nil {
		return nil, mongoError("resolve "+s.coll.Name(), err)
	}
	var keys []struct {
		ID any `bson:"_id"`
	}
	if err := cursor.All(ctx, &keys); err != nil {
		return nil, mongoError("decode "+s.coll.Name(), err)
	}

	switch len(keys) {
	case 0:
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, s.coll.Name(), id)
	case 1:
		return keys[0].ID, nil
	default:
		return nil, fmt.Errorf("%w: %s %s", ErrAmbiguousMatch, s.coll.Name(), id)
	}
}

func (s *MongoStore[T, PT]) Create(ctx context.Context, record *T) error {
	res, err := s.coll.InsertOne(ctx, record)
	if err != nil {
		return mongoError("insert "+s.coll.Name(), err)
	}
	PT(record).SetID(canonicalID(res.InsertedID))
	return nil
}

func (s *MongoStore[T, PT]) CreateMany(ctx context.Context, records []*T) error {
	if len(records) == 0 {
		return nil
	}
	docs := make([]any, len(records))
	for i, record := range records {
		docs[i] = record
	}
	res, err := s.coll.InsertMany(ctx, docs)
	if err != nil {
		return mongoError("insert "+s.coll.Name(), err)
	}
	for i, inserted := range res.InsertedIDs {
		PT(records[i]).SetID(canonicalID(inserted))
	}
	return nil
}

func (s *MongoStore[T, PT]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	key, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	set := withoutID(fields)
	if len(set) > 0 {
		if _, err := s.coll.UpdateOne(ctx, bson.M{"_id": key}, bson.M{"$set": set}); err != nil {
			return nil, mongoError("update "+s.coll.Name(), err)
		}
	}

	var record T
	if err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&record); err != nil {
		return nil, mongoError("reload "+s.coll.Name(), err)
	}
	return &record, nil
}

func (s *MongoStore[T, PT]) Delete(ctx context.Context, id string) error {
	key, err := s.resolve(ctx, id)
	if err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return mongoError("delete "+s.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %s %s", ErrNotFound, s.coll.Name(), id)
	}
	return nil
}

func (s *MongoStore[T, PT]) Count(ctx context.Context, filter map[string]any) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, mongoFilter(filter))
	if err != nil {
		return 0, mongoError("count "+s.coll.Name(), err)
	}
	return n, nil
}

func (s *MongoStore[T, PT]) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, mongoError("clear "+s.coll.Name(), err)
	}
	return res.DeletedCount, nil
}

func canonicalID(value any) string {
	switch v := value.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	}
	return fmt.Sprint(value)
}
