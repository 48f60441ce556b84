package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/synckeeper/internal/common"
)

// Interactive input helpers, swappable in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getMultiline    = GetMultiline
	getConfirmation = GetConfirmation
)

// Login prompts for credentials and opens the session gate. The password
// is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	if u, ok := a.auth.User(); ok && a.auth.IsAuthorized() {
		fmt.Fprintf(a.out, "Already logged in as %s\n", u.Username)
		return nil
	}

	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.Login(ctx, userName, string(password))
	if err != nil {
		return err
	}

	okColor.Fprintf(a.out, "Welcome, %s!\n", u.DisplayName())
	return nil
}

// Logout closes the session gate and forgets the stored session.
func (a *App) Logout(ctx context.Context) error {
	if !a.auth.IsAuthorized() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.auth.User()
	if !ok || !a.auth.IsAuthorized() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s) id=%d", u.DisplayName(), u.Username, u.ID)
	if u.Email != "" {
		fmt.Fprintf(a.out, " <%s>", u.Email)
	}
	fmt.Fprintln(a.out)
	return nil
}
