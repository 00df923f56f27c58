// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseStatus describes the lifecycle state of a purchase.
// Only a single state exists today; purchases are recorded after completion.
type PurchaseStatus string

// PurchaseStatusCompleted is the status written for every recorded purchase.
const PurchaseStatusCompleted PurchaseStatus = "completed"

// Purchase is an append-only record of a completed cylinder sale.
// Buyer and seller display fields are denormalized snapshots taken at
// purchase time; later profile edits do not change historical records.
type Purchase struct {
	ID               uuid.UUID      // The unique identifier for this purchase.
	BuyerID          uuid.UUID      // The buyer account.
	SellerID         uuid.UUID      // The seller account.
	BuyerEmail       string         // Buyer email at purchase time.
	BuyerName        string         // Buyer contact name at purchase time.
	SellerName       string         // Seller contact name at purchase time.
	SellerPhone      string         // Seller contact phone at purchase time.
	Quantity         int            // Cylinders bought, positive and at most the seller's stock at commit.
	PricePerCylinder int64          // Unit price in currency units at purchase time.
	TotalAmount      int64          // Quantity * PricePerCylinder.
	Status           PurchaseStatus // Always PurchaseStatusCompleted.
	PaymentCardLast4 string         // Last four digits of the card used.
	BuyerAddress     string         // Delivery address snapshot.
	BuyerLocation    *Coordinate    // Buyer coordinates snapshot, if known.
	PurchaseDate     time.Time      // Server-assigned completion timestamp.
}
