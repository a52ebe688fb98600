package sqlconfig

import (
	"context"
	"time"
)

// Organization represents a tenant organization.
type Organization struct {
	ID              int64     `db:"id"`
	Name            string    `db:"name"`
	DefaultCurrency string    `db:"default_currency"`
	CreatedAt       time.Time `db:"created_at"`
}

// IOrganizationTable defines the interface for organization storage
// operations.
//
//go:generate mockery --name IOrganizationTable --output mock_IOrganizationTable.go
type IOrganizationTable interface {
	// FindByID returns the organization, or nil when it does not exist.
	FindByID(ctx context.Context, id int64) (*Organization, error)
}
