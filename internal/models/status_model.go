package models

import "time"

// StoreStatus mirrors the singleton Firestore document gating order
// submission. A missing document or a broken subscription is treated as
// open so a backend hiccup never blocks every order (fail-open).
type StoreStatus struct {
	Open      bool      `json:"open" firestore:"open"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
