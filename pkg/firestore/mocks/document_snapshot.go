package mocks

import (
	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/mock"
)

type DocumentSnapshot struct {
	mock.Mock
}

func (m *DocumentSnapshot) DataTo(v interface{}) error {
	args := m.Called(v)
	return args.Error(0)
}

func (m *DocumentSnapshot) ID() string {
	args := m.Called()
	return args.String(0)
}

func (m *DocumentSnapshot) Exists() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *DocumentSnapshot) Ref() *firestore.DocumentRef {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(*firestore.DocumentRef)
}

func (m *DocumentSnapshot) Snapshot() *firestore.DocumentSnapshot {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(*firestore.DocumentSnapshot)
}
