package transaction

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*Table)(nil)

// Table is the Postgres-backed transaction store.
type Table struct {
	exec bob.Executor
}

func NewTable(db *sql.DB) *Table {
	return &Table{exec: bob.NewDB(db)}
}

// sortColumns whitelists sortable columns; anything else falls back to the
// transaction date.
var sortColumns = map[string]string{
	"transactionDate": "transaction_date",
	"amount":          "amount",
	"status":          "status",
}

func sortColumn(key string) string {
	if col, ok := sortColumns[key]; ok {
		return col
	}
	return "transaction_date"
}

// Insert stores a new transaction row.
func (t *Table) Insert(ctx context.Context, row *Row) error {
	q := psql.Insert(
		im.Into("transactions",
			"id", "source_account_id", "target_account_id", "transaction_type",
			"amount", "description", "transaction_date", "status"),
		im.Values(psql.Arg(
			row.ID, row.SourceAccountID, row.TargetAccountID, row.TransactionType,
			row.Amount, row.Description, row.TransactionDate, row.Status)),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// FindByID retrieves a transaction by primary key. Returns sql.ErrNoRows
// when absent.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Row, error) {
	q := psql.Select(
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Row]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateStatus persists a status change for an existing transaction.
func (t *Table) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("status").ToArg(status),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// List returns transactions matching the filter, sorted and paginated.
func (t *Table) List(ctx context.Context, filter *Filter) ([]*Row, error) {
	queryMods := append(t.filterMods(filter),
		sm.Limit(filter.Limit),
		sm.Offset(filter.Offset),
	)

	order := sm.OrderBy(psql.Quote(sortColumn(filter.SortBy)))
	if filter.SortDesc {
		queryMods = append(queryMods, order.Desc())
	} else {
		queryMods = append(queryMods, order.Asc())
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Row]())
	if err != nil {
		return nil, err
	}

	result := make([]*Row, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Count returns the total number of rows matching the filter, ignoring
// pagination.
func (t *Table) Count(ctx context.Context, filter *Filter) (int64, error) {
	queryMods := append(t.filterMods(filter),
		sm.Columns(psql.Raw("count(*)")),
	)
	return bob.One(ctx, t.exec, psql.Select(queryMods...), scan.SingleColumnMapper[int64])
}

func (t *Table) filterMods(filter *Filter) []bob.Mod[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.From("transactions"),
		sm.Where(psql.Raw("(source_account_id = ? OR target_account_id = ?)",
			filter.AccountID, filter.AccountID)),
	}
	if filter.Type != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transaction_type").EQ(psql.Arg(*filter.Type))))
	}
	if filter.Status != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("status").EQ(psql.Arg(*filter.Status))))
	}
	if filter.StartDate != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(*filter.StartDate))))
	}
	if filter.EndDate != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(*filter.EndDate))))
	}
	return queryMods
}
