package service

import "context"

// PassthroughTx runs the disclosure writes directly against the configured
// stores with no transaction boundary. Used with the in-memory stores, where
// there is nothing to roll back; production wires a database-backed runner.
type PassthroughTx struct {
	Stores TxStores
}

// NewPassthroughTx constructs a runner over the given stores.
func NewPassthroughTx(stores TxStores) *PassthroughTx {
	return &PassthroughTx{Stores: stores}
}

func (t *PassthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context, stores TxStores) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, t.Stores)
}
