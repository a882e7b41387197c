package iface

import (
	"context"

	"cloud.google.com/go/firestore"
)

// DocumentSnapshot wraps a firestore document snapshot so DALs can be
// exercised against mocks.
//
//go:generate mockery --name DocumentSnapshot --output ../mocks
type DocumentSnapshot interface {
	DataTo(v interface{}) error
	ID() string
	Exists() bool
	Ref() *firestore.DocumentRef
	Snapshot() *firestore.DocumentSnapshot
}

// DocumentsHandler performs the raw firestore document operations on behalf
// of the DAL layer.
//
//go:generate mockery --name DocumentsHandler --output ../mocks
type DocumentsHandler interface {
	Get(ctx context.Context, ref *firestore.DocumentRef) (DocumentSnapshot, error)
	GetAll(iter *firestore.DocumentIterator) ([]DocumentSnapshot, error)
	Create(ctx context.Context, ref *firestore.DocumentRef, data interface{}) (*firestore.WriteResult, error)
	Set(ctx context.Context, ref *firestore.DocumentRef, data interface{}, opts ...firestore.SetOption) (*firestore.WriteResult, error)
	Update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update) (*firestore.WriteResult, error)
	Delete(ctx context.Context, ref *firestore.DocumentRef) (*firestore.WriteResult, error)
	Add(ctx context.Context, coll *firestore.CollectionRef, data interface{}) (*firestore.DocumentRef, *firestore.WriteResult, error)
}
