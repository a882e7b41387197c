// Package firestore carries the document handler indirection the DAL layer
// is built on, plus the not-found sentinel shared by all DALs.
package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/leafrank/backend/pkg/firestore/iface"
)

// ErrNotFound is returned by DALs when the requested document does not exist.
var ErrNotFound = errors.New("document not found")

// DocumentHandler is the production DocumentsHandler backed by the real
// firestore client types.
type DocumentHandler struct{}

type docSnapshot struct {
	snap *firestore.DocumentSnapshot
}

func (s docSnapshot) DataTo(v interface{}) error {
	return s.snap.DataTo(v)
}

func (s docSnapshot) ID() string {
	return s.snap.Ref.ID
}

func (s docSnapshot) Exists() bool {
	return s.snap.Exists()
}

func (s docSnapshot) Ref() *firestore.DocumentRef {
	return s.snap.Ref
}

func (s docSnapshot) Snapshot() *firestore.DocumentSnapshot {
	return s.snap
}

func (h DocumentHandler) Get(ctx context.Context, ref *firestore.DocumentRef) (iface.DocumentSnapshot, error) {
	snap, err := ref.Get(ctx)
	if err != nil {
		return nil, err
	}

	return docSnapshot{snap}, nil
}

func (h DocumentHandler) GetAll(iter *firestore.DocumentIterator) ([]iface.DocumentSnapshot, error) {
	var snaps []iface.DocumentSnapshot

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		snaps = append(snaps, docSnapshot{snap})
	}

	return snaps, nil
}

func (h DocumentHandler) Create(ctx context.Context, ref *firestore.DocumentRef, data interface{}) (*firestore.WriteResult, error) {
	return ref.Create(ctx, data)
}

func (h DocumentHandler) Set(ctx context.Context, ref *firestore.DocumentRef, data interface{}, opts ...firestore.SetOption) (*firestore.WriteResult, error) {
	return ref.Set(ctx, data, opts...)
}

func (h DocumentHandler) Update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update) (*firestore.WriteResult, error) {
	return ref.Update(ctx, updates)
}

func (h DocumentHandler) Delete(ctx context.Context, ref *firestore.DocumentRef) (*firestore.WriteResult, error) {
	return ref.Delete(ctx)
}

func (h DocumentHandler) Add(ctx context.Context, coll *firestore.CollectionRef, data interface{}) (*firestore.DocumentRef, *firestore.WriteResult, error) {
	return coll.Add(ctx, data)
}
