package dal

import (
	"context"
	"fmt"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/leafrank/backend/common"
	lfFirestore "github.com/leafrank/backend/pkg/firestore"
	"github.com/leafrank/backend/pkg/firestore/iface"
	"github.com/leafrank/backend/pkg/firestore/mocks"
)

func setupSubscriptions() (*SubscriptionsFirestore, *mocks.DocumentsHandler) {
	fs, err := firestore.NewClient(context.Background(),
		common.TestProjectID,
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
	if err != nil {
		panic(err)
	}

	dh := &mocks.DocumentsHandler{}

	return &SubscriptionsFirestore{
		firestoreClientFun: func(ctx context.Context) *firestore.Client {
			return fs
		},
		documentsHandler: dh,
	}, dh
}

func TestSubscriptionsDAL_Get(t *testing.T) {
	ctx := context.Background()
	d, dh := setupSubscriptions()

	dh.
		On("Get", mock.Anything, mock.AnythingOfType("*firestore.DocumentRef")).
		Return(func() iface.DocumentSnapshot {
			snap := &mocks.DocumentSnapshot{}
			snap.On("DataTo", mock.Anything).Return(nil)
			snap.On("ID").Return("org_thrive_syracuse")
			return snap
		}(), nil).
		Once()

	subscription, err := d.Get(ctx, "org_thrive_syracuse")

	assert.NoError(t, err)
	assert.NotNil(t, subscription)
	assert.Equal(t, "org_thrive_syracuse", subscription.ID)

	dh.
		On("Get", mock.Anything, mock.AnythingOfType("*firestore.DocumentRef")).
		Return(func() iface.DocumentSnapshot {
			snap := &mocks.DocumentSnapshot{}
			snap.On("DataTo", mock.Anything).Return(fmt.Errorf("fail"))
			return snap
		}(), nil).
		Once()

	subscription, err = d.Get(ctx, "org_thrive_syracuse")
	assert.Nil(t, subscription)
	assert.Error(t, err)

	dh.
		On("Get", mock.Anything, mock.AnythingOfType("*firestore.DocumentRef")).
		Return(nil, status.Error(codes.NotFound, "not found")).
		Once()

	subscription, err = d.Get(ctx, "org_thrive_syracuse")
	assert.Nil(t, subscription)
	assert.ErrorIs(t, err, lfFirestore.ErrNotFound)

	subscription, err = d.Get(ctx, "")
	assert.Nil(t, subscription)
	assert.ErrorIs(t, err, ErrInvalidOrgID)
}

func TestSubscriptionsDAL_MirrorRefs(t *testing.T) {
	ctx := context.Background()
	d, _ := setupSubscriptions()

	flat := d.flatRef(ctx, "org_thrive_syracuse")
	mirror := d.mirrorRef(ctx, "org_thrive_syracuse")

	assert.Equal(t, "subscriptions/org_thrive_syracuse", flat.Path[len(flat.Path)-len("subscriptions/org_thrive_syracuse"):])
	assert.Equal(t, "organizations/org_thrive_syracuse/subscription/current", mirror.Path[len(mirror.Path)-len("organizations/org_thrive_syracuse/subscription/current"):])
}

func TestSubscriptionsDAL_InvalidOrgID(t *testing.T) {
	ctx := context.Background()
	d, _ := setupSubscriptions()

	err := d.Set(ctx, "", nil)
	assert.ErrorIs(t, err, ErrInvalidOrgID)

	err = d.Update(ctx, "", nil)
	assert.ErrorIs(t, err, ErrInvalidOrgID)
}

func TestSubscriptionsDAL_List(t *testing.T) {
	ctx := context.Background()
	d, dh := setupSubscriptions()

	dh.
		On("GetAll", mock.Anything).
		Return(func() []iface.DocumentSnapshot {
			snap := &mocks.DocumentSnapshot{}
			snap.On("DataTo", mock.Anything).Return(nil)
			snap.On("ID").Return("org_thrive_syracuse")
			return []iface.DocumentSnapshot{snap}
		}(), nil).
		Once()

	subscriptions, err := d.ListActiveWithFreeMonths(ctx)

	assert.NoError(t, err)
	assert.Len(t, subscriptions, 1)
	assert.Equal(t, "org_thrive_syracuse", subscriptions[0].ID)

	dh.
		On("GetAll", mock.Anything).
		Return(nil, fmt.Errorf("fail")).
		Once()

	subscriptions, err = d.ListCancelPending(ctx)
	assert.Nil(t, subscriptions)
	assert.Error(t, err)
}
