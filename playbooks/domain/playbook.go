package domain

import "time"

// Playbook is a marketing playbook template. Templates live in the global
// playbookTemplates collection keyed by tier; assigned copies live under
// each organization.
type Playbook struct {
	ID          string    `firestore:"-"`
	Name        string    `firestore:"name"`
	Tier        string    `firestore:"tier"`
	Category    string    `firestore:"category"`
	Description string    `firestore:"description"`
	Steps       []Step    `firestore:"steps"`
	AssignedAt  time.Time `firestore:"assignedAt,omitempty"`
}

type Step struct {
	Title  string `firestore:"title"`
	Body   string `firestore:"body"`
	Order  int    `firestore:"order"`
	Action string `firestore:"action,omitempty"`
}
