package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ysemenovs/deskhub/internal/client/api"
	"github.com/ysemenovs/deskhub/internal/client/session"
	"github.com/ysemenovs/deskhub/internal/common"
)

func (a *App) register(ctx context.Context) {
	name, err := GetSimpleText(a.in, "Name", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	email, err := GetSimpleText(a.in, "Email", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	password, err := GetPassword(a.out, "Password (8+ characters)")
	if err != nil {
		a.printErr(err)
		return
	}
	defer common.Wipe(password)

	user, err := a.client.Register(ctx, api.RegisterInput{
		Name:     name,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		a.printErr(err)
		return
	}

	a.adoptToken(user.Email)
	fmt.Fprintf(a.out, "registered as %s\n", user.Email)
}

func (a *App) login(ctx context.Context) {
	email, err := GetSimpleText(a.in, "Email", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		a.printErr(err)
		return
	}
	defer common.Wipe(password)

	user, err := a.client.Login(ctx, api.LoginInput{Email: email, Password: string(password)})
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			fmt.Fprintln(a.out, "server unavailable; local data remains readable offline")
		}
		a.printErr(err)
		return
	}

	a.adoptToken(user.Email)
	fmt.Fprintf(a.out, "logged in as %s\n", user.Email)
}

// adoptToken refreshes the session object from the credential the API
// client now holds.
func (a *App) adoptToken(fallbackEmail string) {
	s, err := session.FromToken(a.client.Token())
	if err != nil {
		// opaque (non-JWT) tokens still form a valid session
		s = session.Session{Token: a.client.Token()}
	}
	if s.Email == "" {
		s.Email = fallbackEmail
	}
	a.session = s
}

func (a *App) logout(ctx context.Context) {
	a.client.Logout()
	a.session = session.Session{}
	if err := session.Clear(ctx, a.store); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "logged out")
}

// remember seals the current session to the local store under a
// passphrase so the next start can restore it.
func (a *App) remember(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "log in first")
		return
	}
	passphrase, err := GetPassword(a.out, "Passphrase to protect the saved session")
	if err != nil {
		a.printErr(err)
		return
	}
	defer common.Wipe(passphrase)

	if err := session.Save(ctx, a.store, a.session, passphrase); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "session saved; it will be restored on next start")
}

// restoreSession offers to unlock a remembered session at startup. No
// prompt is shown when nothing was saved.
func (a *App) restoreSession(ctx context.Context) {
	if data, err := a.store.Get(ctx, session.StoreKey); err != nil || len(data) == 0 {
		return
	}

	passphrase, err := GetPassword(a.out, "Passphrase to restore saved session (empty to skip)")
	if err != nil || len(passphrase) == 0 {
		return
	}
	defer common.Wipe(passphrase)

	s, err := session.Load(ctx, a.store, passphrase)
	if err != nil {
		if !errors.Is(err, session.ErrNoSavedSession) {
			a.printErr(err)
		}
		return
	}
	if s.Expired(timeNow()) {
		fmt.Fprintln(a.out, "saved session has expired, please log in")
		_ = session.Clear(ctx, a.store)
		return
	}

	a.session = s
	a.client.SetToken(s.Token)
	fmt.Fprintf(a.out, "welcome back, %s\n", s.Email)
}

func (a *App) whoami(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "not logged in")
		return
	}

	user, err := a.client.Profile(ctx)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s\n", user.Name, user.Email, user.Role)
	if !a.session.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "session expires %s\n", a.session.ExpiresAt.Local().Format("2006-01-02 15:04"))
	}
}

func (a *App) printErr(err error) {
	fmt.Fprintf(a.out, "error: %v\n", err)
}
