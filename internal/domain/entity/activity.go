// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType classifies entries in the marketplace activity feed.
type ActivityType string

const (
	// ActivityUserRegistered is logged when a new account is created.
	ActivityUserRegistered ActivityType = "user_registered"
	// ActivityPurchaseCompleted is logged after a successful purchase transaction.
	ActivityPurchaseCompleted ActivityType = "purchase_completed"
	// ActivitySellerApproved is logged when an admin approves a seller.
	ActivitySellerApproved ActivityType = "seller_approved"
	// ActivitySellerUnapproved is logged when an admin revokes approval.
	ActivitySellerUnapproved ActivityType = "seller_unapproved"
)

// Activity is an append-only entry in the admin activity feed.
type Activity struct {
	ID        uuid.UUID    // The unique identifier for this entry.
	Type      ActivityType // The kind of event recorded.
	ActorID   uuid.UUID    // The account that caused the event.
	SubjectID uuid.UUID    // The account the event is about, if any.
	Message   string       // Human-readable summary shown in the feed.
	CreatedAt time.Time    // Server-assigned timestamp.
}
