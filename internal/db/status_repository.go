package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"topup-backend-go/internal/models"
)

// ErrNotFound is returned when a document is not found in Firestore.
var ErrNotFound = errors.New("document not found")

// firestoreStatusRepository implements StatusRepository against the singleton
// settings/store document.
type firestoreStatusRepository struct {
	client     *firestore.Client
	collection string
	doc        string
}

// NewFirestoreStatusRepository creates a StatusRepository for the given
// collection/document path.
func NewFirestoreStatusRepository(client *firestore.Client, collection, doc string) StatusRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for StatusRepository.")
	}
	return &firestoreStatusRepository{client: client, collection: collection, doc: doc}
}

func (r *firestoreStatusRepository) ref() *firestore.DocumentRef {
	return r.client.Collection(r.collection).Doc(r.doc)
}

// Get reads the status document once.
func (r *firestoreStatusRepository) Get(ctx context.Context) (models.StoreStatus, error) {
	docSnap, err := r.ref().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.StoreStatus{}, fmt.Errorf("status document '%s/%s' not found: %w", r.collection, r.doc, ErrNotFound)
		}
		return models.StoreStatus{}, fmt.Errorf("failed to get status document: %w", err)
	}

	var st models.StoreStatus
	if err := docSnap.DataTo(&st); err != nil {
		return models.StoreStatus{}, fmt.Errorf("failed to decode status document: %w", err)
	}
	return st, nil
}

// Watch streams document snapshots. The iterator retries transient errors
// itself, so an error from Next is terminal: it is forwarded as an event and
// then the channel closes.
func (r *firestoreStatusRepository) Watch(ctx context.Context) (<-chan StatusEvent, error) {
	iter := r.ref().Snapshots(ctx)
	events := make(chan StatusEvent, 1)

	go func() {
		defer close(events)
		defer iter.Stop()
		for {
			snap, err := iter.Next()
			if err != nil {
				if ctx.Err() != nil || status.Code(err) == codes.Canceled {
					return
				}
				select {
				case events <- StatusEvent{Err: err}:
				case <-ctx.Done():
				}
				return
			}
			ev := StatusEvent{}
			if !snap.Exists() {
				ev.Missing = true
			} else if decodeErr := snap.DataTo(&ev.Status); decodeErr != nil {
				ev.Err = fmt.Errorf("failed to decode status snapshot: %w", decodeErr)
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}

// SetOpen merge-upserts the flag with a server timestamp, creating the
// document on the first admin write.
func (r *firestoreStatusRepository) SetOpen(ctx context.Context, open bool) error {
	_, err := r.ref().Set(ctx, map[string]interface{}{
		"open":      open,
		"updatedAt": firestore.ServerTimestamp,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to set status document '%s/%s': %w", r.collection, r.doc, err)
	}
	return nil
}
