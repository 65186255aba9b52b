package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps each collection in a MongoDB collection of the same name.
type MongoStore struct {
	db *mongo.Database
}

var _ Store = (*MongoStore)(nil)

// NewMongoStore creates a MongoStore over an already connected database.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) coll(c Collection) *mongo.Collection {
	return s.db.Collection(string(c))
}

func toBSON(f Filter) bson.M {
	m := bson.M{}
	for k, v := range f {
		m[k] = v
	}
	return m
}

func (s *MongoStore) Insert(ctx context.Context, coll Collection, doc any) error {
	if _, err := s.coll(coll).InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return unavailable("insert", coll, err)
	}
	return nil
}

func (s *MongoStore) InsertMany(ctx context.Context, coll Collection, docs []any) error {
	if len(docs) == 0 {
		return nil
	}
	if _, err := s.coll(coll).InsertMany(ctx, docs); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return unavailable("insert many", coll, err)
	}
	return nil
}

func (s *MongoStore) Find(ctx context.Context, coll Collection, filter Filter, out any) error {
	cur, err := s.coll(coll).Find(ctx, toBSON(filter))
	if err != nil {
		return unavailable("find", coll, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return unavailable("decode", coll, err)
	}
	return nil
}

func (s *MongoStore) FindOne(ctx context.Context, coll Collection, filter Filter, out any) error {
	err := s.coll(coll).FindOne(ctx, toBSON(filter)).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return unavailable("find one", coll, err)
	}
	return nil
}

func (s *MongoStore) Replace(ctx context.Context, coll Collection, id string, doc any) error {
	res, err := s.coll(coll).ReplaceOne(ctx, bson.M{"id": id}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return unavailable("replace", coll, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) SetFields(ctx context.Context, coll Collection, id string, fields Filter) error {
	res, err := s.coll(coll).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": toBSON(fields)})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return unavailable("update", coll, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteOne(ctx context.Context, coll Collection, filter Filter) error {
	res, err := s.coll(coll).DeleteOne(ctx, toBSON(filter))
	if err != nil {
		return unavailable("delete", coll, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteMany(ctx context.Context, coll Collection, filter Filter) (int64, error) {
	res, err := s.coll(coll).DeleteMany(ctx, toBSON(filter))
	if err != nil {
		return 0, unavailable("delete many", coll, err)
	}
	return res.DeletedCount, nil
}

func (s *MongoStore) Count(ctx context.Context, coll Collection, filter Filter) (int64, error) {
	n, err := s.coll(coll).CountDocuments(ctx, toBSON(filter))
	if err != nil {
		return 0, unavailable("count", coll, err)
	}
	return n, nil
}

func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	for _, coll := range Collections {
		var models []mongo.IndexModel
		for _, field := range UniqueFields[coll] {
			models = append(models, mongo.IndexModel{
				Keys:    bson.D{{Key: field, Value: 1}},
				Options: options.Index().SetUnique(true),
			})
		}
		for _, field := range LookupFields[coll] {
			models = append(models, mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}})
		}
		if len(models) == 0 {
			continue
		}
		if _, err := s.coll(coll).Indexes().CreateMany(ctx, models); err != nil {
			return unavailable("create indexes", coll, err)
		}
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}
