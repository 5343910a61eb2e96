package report

import (
	"fmt"
	"strings"
)

// builder assembles a parameterized statement. Predicates are appended only
// when the corresponding filter is present, and positional arguments stay in
// the exact order predicates were appended.
type builder struct {
	sql  strings.Builder
	args []any
}

// newBuilder starts from a base statement whose placeholders, if any, are
// already numbered $1..$n and matched by args.
func newBuilder(base string, args ...any) *builder {
	b := &builder{args: args}
	b.sql.WriteString(base)
	return b
}

// And appends "AND <expr> $n" with the next placeholder number. expr carries
// the column and operator, e.g. "t.shiftDate >=".
func (b *builder) And(expr string, arg any) {
	b.args = append(b.args, arg)
	fmt.Fprintf(&b.sql, " AND %s $%d", expr, len(b.args))
}

// Paginate appends deterministic ordering and the offset/limit window, then
// returns the finished statement. offset = (page-1) * limit.
func (b *builder) Paginate(orderBy string, page, limit int) (string, []any) {
	b.args = append(b.args, (page-1)*limit)
	offsetPos := len(b.args)
	b.args = append(b.args, limit)
	limitPos := len(b.args)
	fmt.Fprintf(&b.sql, " ORDER BY %s OFFSET $%d LIMIT $%d", orderBy, offsetPos, limitPos)
	return b.sql.String(), b.args
}
