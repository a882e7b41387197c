package mocks

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/mock"

	"github.com/leafrank/backend/pkg/firestore/iface"
)

type DocumentsHandler struct {
	mock.Mock
}

func (m *DocumentsHandler) Get(ctx context.Context, ref *firestore.DocumentRef) (iface.DocumentSnapshot, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(iface.DocumentSnapshot), args.Error(1)
}

func (m *DocumentsHandler) GetAll(iter *firestore.DocumentIterator) ([]iface.DocumentSnapshot, error) {
	args := m.Called(iter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]iface.DocumentSnapshot), args.Error(1)
}

func (m *DocumentsHandler) Create(ctx context.Context, ref *firestore.DocumentRef, data interface{}) (*firestore.WriteResult, error) {
	args := m.Called(ctx, ref, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*firestore.WriteResult), args.Error(1)
}

func (m *DocumentsHandler) Set(ctx context.Context, ref *firestore.DocumentRef, data interface{}, opts ...firestore.SetOption) (*firestore.WriteResult, error) {
	callArgs := []interface{}{ctx, ref, data}
	for _, opt := range opts {
		callArgs = append(callArgs, opt)
	}

	args := m.Called(callArgs...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*firestore.WriteResult), args.Error(1)
}

func (m *DocumentsHandler) Update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update) (*firestore.WriteResult, error) {
	args := m.Called(ctx, ref, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*firestore.WriteResult), args.Error(1)
}

func (m *DocumentsHandler) Delete(ctx context.Context, ref *firestore.DocumentRef) (*firestore.WriteResult, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*firestore.WriteResult), args.Error(1)
}

func (m *DocumentsHandler) Add(ctx context.Context, coll *firestore.CollectionRef, data interface{}) (*firestore.DocumentRef, *firestore.WriteResult, error) {
	args := m.Called(ctx, coll, data)

	var ref *firestore.DocumentRef
	if args.Get(0) != nil {
		ref = args.Get(0).(*firestore.DocumentRef)
	}

	var wr *firestore.WriteResult
	if args.Get(1) != nil {
		wr = args.Get(1).(*firestore.WriteResult)
	}

	return ref, wr, args.Error(2)
}
