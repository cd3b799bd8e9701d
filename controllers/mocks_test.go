package controllers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeCollection satisfies store.Collection using the driver's in-memory
// result constructors.
type fakeCollection struct {
	inserted      []interface{}
	insertErr     error
	insertedMany  []interface{}
	insertManyErr error

	findOneDoc interface{} // nil means not found
	findDocs   []interface{}
	findErr    error

	deleteCalled bool
	deleteCount  int64
	deleteErr    error

	countResult int64
	countErr    error
}

func (f *fakeCollection) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, document)
	return &mongo.InsertOneResult{}, nil
}

func (f *fakeCollection) InsertMany(_ context.Context, documents []interface{}, _ ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
	if f.insertManyErr != nil {
		return nil, f.insertManyErr
	}
	f.insertedMany = append(f.insertedMany, documents...)
	return &mongo.InsertManyResult{}, nil
}

func (f *fakeCollection) FindOne(_ context.Context, _ interface{}, _ ...*options.FindOneOptions) *mongo.SingleResult {
	if f.findOneDoc == nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	return mongo.NewSingleResultFromDocument(f.findOneDoc, nil, nil)
}

func (f *fakeCollection) Find(_ context.Context, _ interface{}, _ ...*options.FindOptions) (*mongo.Cursor, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	docs := f.findDocs
	if docs == nil {
		docs = []interface{}{}
	}
	return mongo.NewCursorFromDocuments(docs, nil, nil)
}

func (f *fakeCollection) DeleteMany(_ context.Context, _ interface{}, _ ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	f.deleteCalled = true
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &mongo.DeleteResult{DeletedCount: f.deleteCount}, nil
}

func (f *fakeCollection) CountDocuments(_ context.Context, _ interface{}, _ ...*options.CountOptions) (int64, error) {
	return f.countResult, f.countErr
}

// fakeNotifier records the last message and answers with a fixed outcome.
type fakeNotifier struct {
	ok     bool
	called bool
	text   string
}

func (n *fakeNotifier) Send(_ context.Context, text string) bool {
	n.called = true
	n.text = text
	return n.ok
}
