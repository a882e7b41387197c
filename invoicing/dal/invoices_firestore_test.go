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
	"google.golang.org/grpc/credentials/insecure"

	"github.com/leafrank/backend/common"
	"github.com/leafrank/backend/invoicing/domain"
	"github.com/leafrank/backend/pkg/firestore/mocks"
)

func setupInvoices() (*InvoicesFirestore, *mocks.DocumentsHandler) {
	fs, err := firestore.NewClient(context.Background(),
		common.TestProjectID,
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
	if err != nil {
		panic(err)
	}

	dh := &mocks.DocumentsHandler{}

	return &InvoicesFirestore{
		firestoreClientFun: func(ctx context.Context) *firestore.Client {
			return fs
		},
		documentsHandler: dh,
	}, dh
}

func TestInvoicesDAL_Add(t *testing.T) {
	ctx := context.Background()
	d, dh := setupInvoices()

	dh.
		On("Add", mock.Anything, mock.AnythingOfType("*firestore.CollectionRef"), mock.Anything).
		Return(&firestore.DocumentRef{ID: "inv_123"}, nil, nil).
		Once()

	invoice := &domain.Invoice{
		OrgID:       "org_thrive_syracuse",
		Amount:      99,
		Description: "LeafRank Pro subscription",
		TierID:      "pro",
	}

	id, err := d.Add(ctx, invoice)

	assert.NoError(t, err)
	assert.Equal(t, "inv_123", id)
	assert.Equal(t, domain.StatusPending, invoice.Status)
	assert.False(t, invoice.CreatedAt.IsZero())

	dh.
		On("Add", mock.Anything, mock.AnythingOfType("*firestore.CollectionRef"), mock.Anything).
		Return(nil, nil, fmt.Errorf("fail")).
		Once()

	id, err = d.Add(ctx, &domain.Invoice{OrgID: "org_thrive_syracuse"})
	assert.Empty(t, id)
	assert.Error(t, err)
}
