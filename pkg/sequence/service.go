package sequence

import (
	"context"
	"fmt"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/counter"
)

// Sequence scopes. Each scope is an independent monotonic counter.
const (
	ScopeRequirement = "requirement"
	ScopeTask        = "task"
	ScopeQuery       = "query"
	ScopeSubmission  = "submission"
)

// Prefixes for formatted document numbers.
var prefixes = map[string]string{
	ScopeRequirement: "REQ",
	ScopeTask:        "TSK",
	ScopeQuery:       "QRY",
	ScopeSubmission:  "SUB",
}

// Next allocates the next value for a scope inside the caller's transaction.
// The upsert is a single INSERT .. ON CONFLICT DO UPDATE SET value = value+1,
// so two transactions cannot read the same value; the row lock is held until
// the caller commits. The unique constraint on the numbered column backstops
// this in case a caller ever allocates outside a transaction.
func Next(ctx context.Context, tx *ent.Tx, scope string) (int, error) {
	err := tx.Counter.Create().
		SetScope(scope).
		SetValue(1).
		OnConflictColumns(counter.FieldScope).
		Update(func(u *ent.CounterUpsert) {
			u.AddValue(1)
		}).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to advance %s counter: %w", scope, err)
	}

	c, err := tx.Counter.Query().
		Where(counter.ScopeEQ(scope)).
		Only(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s counter: %w", scope, err)
	}

	return c.Value, nil
}

// NextNumber allocates and formats the next document number for a scope,
// e.g. "TSK-0042".
func NextNumber(ctx context.Context, tx *ent.Tx, scope string) (string, error) {
	prefix, ok := prefixes[scope]
	if !ok {
		return "", fmt.Errorf("unknown sequence scope %q", scope)
	}

	n, err := Next(ctx, tx, scope)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%04d", prefix, n), nil
}
