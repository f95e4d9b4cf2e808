package client

import (
	"context"

	"github.com/monetaio/moneta/api/types"
)

// Login exchanges credentials for a bearer token. The client carries no
// token at this point; the caller decides what to do with the session.
func (cli *APIClient) Login(ctx context.Context, username, password string) (types.LoginResponse, error) {
	var v types.LoginResponse
	err := cli.Post(ctx, "/user/login", types.LoginRequest{Username: username, Password: password}, &v)
	return v, err
}

// CreateUser registers a new user and returns the server's message.
func (cli *APIClient) CreateUser(ctx context.Context, username, password string) (string, error) {
	var v types.Message
	err := cli.Post(ctx, "/user", types.CreateUserRequest{Username: username, Password: password}, &v)
	return v.Message, err
}
