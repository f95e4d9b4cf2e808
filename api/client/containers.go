package client

import (
	"context"

	"github.com/monetaio/moneta/api/types"
)

func (cli *APIClient) GetAccountContainers(ctx context.Context) ([]types.AccountContainer, error) {
	var v []types.AccountContainer
	err := cli.Get(ctx, "/account-container", nil, &v)
	return v, err
}

// CreateAccountContainer creates a container together with its
// sub-accounts. The request is validated locally and never sent when
// invalid.
func (cli *APIClient) CreateAccountContainer(ctx context.Context, req types.CreateAccountContainerRequest) (types.AccountContainer, error) {
	var v types.AccountContainer
	if err := req.Validate(); err != nil {
		return v, err
	}
	err := cli.Post(ctx, "/account-container", req, &v)
	return v, err
}

func (cli *APIClient) GetAccounts(ctx context.Context, containerID string) ([]types.Account, error) {
	var v []types.Account
	err := cli.Get(ctx, "/account-container/"+containerID+"/accounts", nil, &v)
	return v, err
}
