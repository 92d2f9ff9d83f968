// Package login contains runners for identity commands.
package login

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/jmap/pkg/auth"
)

// Login records the given email as the current user.
type Login struct {
	Email    string
	Identity *auth.Manager
}

func (n *Login) Do(ctx context.Context) error {
	if n.Identity == nil {
		return errors.New("can not login, no identity")
	}
	if err := n.Identity.SignIn(n.Email); err != nil {
		return err
	}
	user, _ := n.Identity.CurrentUser()
	fmt.Printf("signed in as %s\n", user)
	return nil
}

// Logout clears the recorded identity.
type Logout struct {
	Identity *auth.Manager
}

func (n *Logout) Do(ctx context.Context) error {
	if n.Identity == nil {
		return errors.New("can not logout, no identity")
	}
	if err := n.Identity.SignOut(); err != nil {
		return err
	}
	fmt.Println("signed out")
	return nil
}

// Whoami prints the current user.
type Whoami struct {
	Identity *auth.Manager
}

func (n *Whoami) Do(ctx context.Context) error {
	if n.Identity == nil {
		return errors.New("no identity")
	}
	user, ok := n.Identity.CurrentUser()
	if !ok {
		fmt.Println("not signed in")
		return nil
	}
	fmt.Println(user)
	return nil
}
