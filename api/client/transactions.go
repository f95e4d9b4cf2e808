package client

import (
	"context"

	"github.com/monetaio/moneta/api/types"
)

func (cli *APIClient) GetCategories(ctx context.Context) ([]types.Category, error) {
	var v []types.Category
	err := cli.Get(ctx, "/category", nil, &v)
	return v, err
}

// CreateTransaction records a transaction against an account. The
// request is validated locally first; in particular a missing category
// blocks submission entirely.
func (cli *APIClient) CreateTransaction(ctx context.Context, req types.CreateTransactionRequest) (types.Transaction, error) {
	var v types.Transaction
	if err := req.Validate(); err != nil {
		return v, err
	}
	err := cli.Post(ctx, "/transaction", req, &v)
	return v, err
}
