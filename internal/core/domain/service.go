package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Category classifies the kind of work a service record describes.
type Category int

// Service categories.
const (
	CategoryMaintenance  Category = 1
	CategoryInstallation Category = 2
	CategoryRepair       Category = 3
	CategoryCleaning     Category = 4
	CategoryOther        Category = 5
)

// Accepted category range, inclusive.
const (
	MinCategory = CategoryMaintenance
	MaxCategory = CategoryOther
)

// IsValid returns true if the category lies in [MinCategory, MaxCategory].
func (c Category) IsValid() bool {
	return ValidCategory(c)
}

// String returns the numeric code.
func (c Category) String() string {
	return strconv.Itoa(int(c))
}

// Status tracks the lifecycle stage of a service record. Only the initial
// StatusAwaiting assignment happens in this codebase.
type Status int

// Service statuses.
const (
	StatusCancelled  Status = 0
	StatusAwaiting   Status = 1
	StatusInProgress Status = 2
	StatusFinished   Status = 3
)

// String returns the numeric code.
func (s Status) String() string {
	return strconv.Itoa(int(s))
}

// ServiceRecord is a maintenance/service job tied to a user.
type ServiceRecord struct {
	// ID is the unique, immutable identifier.
	ID int64

	// UserID references the owning User. It is checked at creation only.
	UserID int64

	// StartDate and EndDate are DD/MM/YYYY; StartDate is strictly earlier.
	StartDate string
	EndDate   string

	// Price is not validated.
	Price decimal.Decimal

	Category Category

	// Status is StatusAwaiting on creation and never supplied by callers.
	Status Status
}

// NewServiceRecord carries the caller-supplied fields for creating a
// service record.
type NewServiceRecord struct {
	UserID    int64
	StartDate string
	EndDate   string
	Price     decimal.Decimal
	Category  Category
}

// ServiceView is a ServiceRecord enriched with derived display data that
// is never persisted.
type ServiceView struct {
	ServiceRecord

	// UserName is the owner's name, or the unknown-user sentinel when the
	// owner no longer resolves.
	UserName string

	CategoryLabel string
	StatusLabel   string
}
