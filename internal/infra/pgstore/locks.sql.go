package pgstore

import (
	"context"
)

// Keys are hashed text such as "venue:<uuid>"; the migration lock uses a plain bigint.
const acquireXactLock = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

// AcquireXactLock blocks until the lock is granted and holds it until the
// transaction ends.
func (q *Queries) AcquireXactLock(ctx context.Context, db DBTX, key string) error {
	_, err := db.Exec(ctx, acquireXactLock, key)
	return err
}
