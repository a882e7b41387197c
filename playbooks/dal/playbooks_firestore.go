package dal

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/leafrank/backend/framework/connection"
	lfFirestore "github.com/leafrank/backend/pkg/firestore"
	"github.com/leafrank/backend/pkg/firestore/iface"
	"github.com/leafrank/backend/playbooks/domain"
)

const (
	templatesCollection     = "playbookTemplates"
	organizationsCollection = "organizations"
	playbooksSubcollection  = "playbooks"
)

var ErrInvalidOrgID = errors.New("invalid organization id")

type PlaybooksFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   iface.DocumentsHandler
}

func NewPlaybooksFirestore(ctx context.Context, projectID string) (*PlaybooksFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewPlaybooksFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewPlaybooksFirestoreWithClient(fun connection.FirestoreFromContextFun) *PlaybooksFirestore {
	return &PlaybooksFirestore{
		firestoreClientFun: fun,
		documentsHandler:   lfFirestore.DocumentHandler{},
	}
}

// ListTemplatesByTier returns the playbook templates for one playbook tier.
func (d *PlaybooksFirestore) ListTemplatesByTier(ctx context.Context, playbookTier string) ([]*domain.Playbook, error) {
	iter := d.firestoreClientFun(ctx).
		Collection(templatesCollection).
		Where("tier", "==", playbookTier).
		Documents(ctx)

	snaps, err := d.documentsHandler.GetAll(iter)
	if err != nil {
		return nil, err
	}

	playbooks := make([]*domain.Playbook, len(snaps))

	for i, snap := range snaps {
		var playbook domain.Playbook
		if err := snap.DataTo(&playbook); err != nil {
			return nil, err
		}

		playbook.ID = snap.ID()
		playbooks[i] = &playbook
	}

	return playbooks, nil
}

// SetOrgPlaybooks writes the playbook copies under the organization in one
// batch, keyed by template id so re-assignment overwrites rather than
// duplicates.
func (d *PlaybooksFirestore) SetOrgPlaybooks(ctx context.Context, orgID string, playbooks []*domain.Playbook) error {
	if orgID == "" {
		return ErrInvalidOrgID
	}

	if len(playbooks) == 0 {
		return nil
	}

	coll := d.firestoreClientFun(ctx).
		Collection(organizationsCollection).
		Doc(orgID).
		Collection(playbooksSubcollection)

	now := time.Now().UTC()

	batch := d.firestoreClientFun(ctx).Batch()

	for _, playbook := range playbooks {
		playbook.AssignedAt = now
		batch.Set(coll.Doc(playbook.ID), playbook)
	}

	_, err := batch.Commit(ctx)

	return err
}
