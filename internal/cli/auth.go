package cli

import (
	"context"
	"errors"
	"fmt"

	"promptadmin/internal/common"
)

// Login prompts for credentials and authenticates against the backend.
//
// On success the session token is already persisted by the session store;
// the method prints the decoded identity. On rejection the user sees a
// generic invalid-credentials line (plus whatever detail the server put in
// the error body); on transport failure a server-unavailable line. The
// password bytes are wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	identity, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrUnavailable) {
			printlnFn("Server unavailable, try again later.")
		} else {
			printlnFn("Login failed: invalid credentials.")
		}
		a.log.Warn(ctx, "login rejected", "err", err)
		return nil
	}

	if identity != nil {
		printlnFn(fmt.Sprintf("Logged in as %s (%s)", identity.Subject, identity.Role))
	} else {
		// Token stored but payload did not decode; keep the session, the
		// server will be the judge on the next request.
		printlnFn("Logged in.")
	}
	return nil
}

// Logout clears the stored token. Safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}
