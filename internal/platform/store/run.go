package store

import "context"

// RunForSite wraps ctx with the serving site host and calls fn inside the provided TxRunner
func RunForSite(ctx context.Context, tx TxRunner, host string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithSiteHost(ctx, host)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}
