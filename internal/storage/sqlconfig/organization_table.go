package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IOrganizationTable = (*OrganizationsTable)(nil)

// OrganizationsTable provides access to the organizations table.
type OrganizationsTable struct {
	exec bob.Executor
}

// NewOrganizationsTable creates an OrganizationsTable over the given executor.
func NewOrganizationsTable(exec bob.Executor) OrganizationsTable {
	return OrganizationsTable{exec: exec}
}

// FindByID retrieves an organization by primary key, nil when absent.
func (t *OrganizationsTable) FindByID(ctx context.Context, id int64) (*Organization, error) {
	query := psql.Select(
		sm.Columns("id", "name", "default_currency", "created_at"),
		sm.From("organizations"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Organization]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}
