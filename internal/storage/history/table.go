package history

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IHistoryTable = (*Table)(nil)

// Table is the Postgres-backed ledger entry store.
type Table struct {
	exec bob.Executor
}

func NewTable(db *sql.DB) *Table {
	return &Table{exec: bob.NewDB(db)}
}

var sortColumns = map[string]string{
	"recordDate": "record_date",
	"amount":     "amount",
	"status":     "status",
}

func sortColumn(key string) string {
	if col, ok := sortColumns[key]; ok {
		return col
	}
	return "record_date"
}

// Insert stores a new ledger entry. A unique index on transaction_id backs
// the one-entry-per-transaction invariant.
func (t *Table) Insert(ctx context.Context, row *Row) error {
	q := psql.Insert(
		im.Into("transaction_history",
			"id", "account_id", "transaction_id", "balance_before", "balance_after",
			"amount", "transaction_type", "status", "description", "record_date"),
		im.Values(psql.Arg(
			row.ID, row.AccountID, row.TransactionID, row.BalanceBefore, row.BalanceAfter,
			row.Amount, row.TransactionType, row.Status, row.Description, row.RecordDate)),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// FindByID retrieves a ledger entry by primary key. Returns sql.ErrNoRows
// when absent.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Row, error) {
	q := psql.Select(
		sm.From("transaction_history"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Row]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ExistsByTransactionID reports whether a ledger entry already exists for
// the given transaction.
func (t *Table) ExistsByTransactionID(ctx context.Context, transactionID uuid.UUID) (bool, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From("transaction_history"),
		sm.Where(psql.Quote("transaction_id").EQ(psql.Arg(transactionID))),
	)
	count, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindLatestByAccountID returns the most recent ledger entry for an account
// by record date. Returns sql.ErrNoRows when the account has no entries.
func (t *Table) FindLatestByAccountID(ctx context.Context, accountID uuid.UUID) (*Row, error) {
	q := psql.Select(
		sm.From("transaction_history"),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
		sm.OrderBy(psql.Quote("record_date")).Desc(),
		sm.Limit(1),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Row]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// CountByAccountID returns the number of ledger entries for an account.
func (t *Table) CountByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From("transaction_history"),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

// List returns ledger entries matching the filter, sorted and paginated.
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
		sm.From("transaction_history"),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(filter.AccountID))),
	}
	if filter.Type != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transaction_type").EQ(psql.Arg(*filter.Type))))
	}
	if filter.Status != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("status").EQ(psql.Arg(*filter.Status))))
	}
	if filter.StartDate != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("record_date").GTE(psql.Arg(*filter.StartDate))))
	}
	if filter.EndDate != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("record_date").LTE(psql.Arg(*filter.EndDate))))
	}
	return queryMods
}
