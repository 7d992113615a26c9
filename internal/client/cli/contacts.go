package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ysemenovs/deskhub/internal/client/api"
	"github.com/ysemenovs/deskhub/internal/client/models"
	"github.com/ysemenovs/deskhub/internal/client/store"
)

func (a *App) listContacts(ctx context.Context) {
	var contacts []models.Contact

	if a.currentMode() == ModeOffline {
		data, err := a.store.Get(ctx, store.KeyContacts)
		if err != nil {
			a.printErr(err)
			return
		}
		if err := json.Unmarshal(data, &contacts); err != nil {
			a.printErr(err)
			return
		}
		fmt.Fprintln(a.out, "(local data, server unreachable)")
	} else {
		var err error
		if contacts, err = a.client.ListContacts(ctx); err != nil {
			a.printErr(err)
			return
		}
	}

	if len(contacts) == 0 {
		fmt.Fprintln(a.out, "no contacts")
		return
	}
	for _, c := range contacts {
		fmt.Fprintf(a.out, "[%s] %s <%s> %s %s\n", c.ID, c.Name, c.Email, c.Phone, c.Company)
	}
}

func (a *App) addContact(ctx context.Context) {
	name, err := GetSimpleText(a.in, "Name", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	email, err := GetSimpleText(a.in, "Email (optional)", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	phone, err := GetSimpleText(a.in, "Phone (optional)", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	company, err := GetSimpleText(a.in, "Company (optional)", a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	contact, err := a.client.CreateContact(ctx, api.CreateContactInput{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Company: company,
	})
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "created contact %s\n", contact.ID)
}
