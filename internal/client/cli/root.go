package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) prompt() string {
	s := string(a.currentMode())
	if a.session.Email != "" {
		s = a.session.Email + " " + s
	}
	return fmt.Sprintf("deskhub (%s)> ", s)
}

func (a *App) repl(ctx context.Context) {
	fmt.Fprintln(a.out, "DeskHub CLI (type 'help' for commands)")

	for {
		fmt.Fprint(a.out, a.prompt())
		line, err := a.in.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		cmd, args := splitCommand(line)
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			a.printHelp()
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "remember":
			a.remember(ctx)
		case "whoami":
			a.whoami(ctx)
		case "tasks":
			a.listTasks(ctx)
		case "addtask":
			a.addTask(ctx)
		case "donetask":
			a.completeTask(ctx, args)
		case "deltask":
			a.deleteTask(ctx, args)
		case "contacts":
			a.listContacts(ctx)
		case "addcontact":
			a.addContact(ctx)
		case "events":
			a.listEvents(ctx)
		case "addevent":
			a.addEvent(ctx)
		case "notes":
			a.listNotes(ctx)
		case "addnote":
			a.addNote(ctx)
		case "delnote":
			a.deleteNote(ctx, args)
		case "notifications":
			a.listNotifications(ctx)
		case "readall":
			a.markAllNotificationsRead(ctx)
		case "folders":
			a.listFolders(ctx)
		case "docs":
			a.listDocuments(ctx, args)
		case "upload":
			a.uploadDocument(ctx, args)
		case "download":
			a.downloadDocument(ctx, args)
		case "push":
			a.pushSubscribe(ctx)
		case "unpush":
			a.pushUnsubscribe(ctx)
		case "pushstatus":
			a.pushStatus(ctx)
		case "ask":
			a.ask(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintf(a.out, "unknown command %q, try 'help'\n", cmd)
		}
	}
}

// splitCommand breaks an input line into the command word and the rest.
func splitCommand(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "session:       logout, remember, whoami")
		fmt.Fprintln(a.out, "tasks:         tasks, addtask, donetask <id>, deltask <id>")
		fmt.Fprintln(a.out, "contacts:      contacts, addcontact")
		fmt.Fprintln(a.out, "calendar:      events, addevent")
		fmt.Fprintln(a.out, "notes:         notes, addnote, delnote <id>")
		fmt.Fprintln(a.out, "documents:     folders, docs [folder-id], upload <path> [folder-id], download <id>")
		fmt.Fprintln(a.out, "notifications: notifications, readall")
		fmt.Fprintln(a.out, "push:          push, unpush, pushstatus")
		fmt.Fprintln(a.out, "assistant:     ask <question>")
		fmt.Fprintln(a.out, "other:         exit")
		return
	}
	fmt.Fprintln(a.out, "available: register, login, tasks, notes, contacts, events, exit")
	fmt.Fprintln(a.out, "(list commands read local data until you log in)")
}
