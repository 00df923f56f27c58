// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single account.
// Exactly one of the role-specific profiles is set for buyers and sellers;
// admins carry neither.
type User struct {
	ID            uuid.UUID      // The unique identifier for the account.
	Email         string         // The account's login email, unique across the system.
	Name          string         // The contact name shown to other parties.
	Phone         string         // The contact phone number shown to other parties.
	Role          Role           // The account role, fixed at registration.
	BuyerProfile  *BuyerProfile  // Present iff Role == RoleBuyer.
	SellerProfile *SellerProfile // Present iff Role == RoleSeller.
	CreatedAt     time.Time      // Timestamp of when this account was created.
	UpdatedAt     time.Time      // Timestamp of the last modification to this account.
}

// BuyerProfile holds data specific to the buyer role.
type BuyerProfile struct {
	UserID    uuid.UUID   // Foreign key linking this profile to its User.
	Address   string      // Free-text delivery address, snapshot into purchases.
	Location  *Coordinate // Optional last known buyer coordinates.
	UpdatedAt time.Time   // Timestamp of the last modification to this profile.
}

// SellerProfile holds data specific to the seller role.
type SellerProfile struct {
	UserID             uuid.UUID   // Foreign key linking this profile to its User.
	Approved           bool        // Admin-granted permission to appear in buyer searches.
	Active             bool        // Visibility toggle, self- or admin-controlled.
	CylindersAvailable int         // Current sellable stock, never negative.
	Location           *Coordinate // Pickup location used by the radius search.
	LicenseNumber      string      // Informational license fields, not verified.
	LicenseeNameAddr   string
	LicenseValidity    string
	LicenseType        string
	UpdatedAt          time.Time // Timestamp of the last modification to this profile.
}

// Visible reports whether the seller may appear in buyer searches.
func (p *SellerProfile) Visible() bool {
	return p.Approved && p.Active
}

// Purchasable reports whether the seller can currently receive purchases.
func (p *SellerProfile) Purchasable() bool {
	return p.Visible() && p.CylindersAvailable > 0
}
