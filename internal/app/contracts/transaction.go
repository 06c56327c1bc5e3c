package contracts

import "context"

// TransactionManager groups multi-record writes so they commit or abort as a
// unit. Implementations must guarantee no partial-success path.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
