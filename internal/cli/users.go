package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"promptadmin/internal/models"
	"promptadmin/internal/view"
)

// Users is the user-management screen. Everyone can browse and filter;
// create/edit/delete exist only for admins, and the seed admin account is
// never deletable.
//
// Screen commands: search <term>, role <USER|ADMIN|all>, create, edit <id>,
// delete <id>, refresh, back.
func (a *App) Users(ctx context.Context) error {
	identity, err := a.session.CurrentUser(ctx)
	if err != nil {
		return err
	}
	isAdmin := identity != nil && identity.Role == models.RoleAdmin

	col := view.NewCollection(a.users.List)
	var search string
	var roleFilter string // "" means all

	printlnFn("Loading users...")
	if err := col.Refresh(ctx); err != nil && a.renderError(ctx, err) {
		return nil
	}

	for {
		a.renderUsers(col, search, roleFilter)

		line, err := getSimpleText(a.reader, usersPrompt(isAdmin), a.out)
		if err != nil {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "back":
			return nil

		case "refresh":
			if err := col.Refresh(ctx); err != nil && a.renderError(ctx, err) {
				return nil
			}

		case "search":
			search = strings.Join(args, " ")

		case "role":
			if len(args) == 0 || strings.EqualFold(args[0], "all") {
				roleFilter = ""
				continue
			}
			roleFilter = strings.ToUpper(args[0])

		case "create":
			if !isAdmin {
				printlnFn("Only admins can create users.")
				continue
			}
			if a.createUser(ctx, col) {
				return nil
			}

		case "edit":
			if !isAdmin {
				printlnFn("Only admins can edit users.")
				continue
			}
			if a.editUser(ctx, col, args) {
				return nil
			}

		case "delete":
			if !isAdmin {
				printlnFn("Only admins can delete users.")
				continue
			}
			if a.deleteUser(ctx, col, args) {
				return nil
			}

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func usersPrompt(isAdmin bool) string {
	if isAdmin {
		return "users: search <term> | role <USER|ADMIN|all> | create | edit <id> | delete <id> | refresh | back"
	}
	return "users: search <term> | role <USER|ADMIN|all> | refresh | back"
}

func (a *App) renderUsers(col *view.Collection[models.User], search, roleFilter string) {
	if !col.Loaded() {
		printlnFn("Users are not loaded. Try 'refresh'.")
		return
	}

	filtered := view.Filter(col.Items(), func(u models.User) bool {
		if roleFilter != "" && string(u.Role) != roleFilter {
			return false
		}
		return view.MatchText(search, u.Firstname, u.Lastname, u.Email)
	})

	if len(filtered) == 0 {
		if len(col.Items()) == 0 {
			printlnFn("No users found.")
		} else {
			printlnFn("No users match the current filters.")
		}
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIRST NAME\tLAST NAME\tEMAIL\tROLE")
	for _, u := range filtered {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Firstname, u.Lastname, u.Email, u.Role)
	}
	_ = w.Flush()
	fmt.Fprintf(a.out, "%d of %d users shown\n", len(filtered), len(col.Items()))
}

// createUser runs the create form and refreshes on success. The bool result
// reports a forced logout (session expired mid-flight).
func (a *App) createUser(ctx context.Context, col *view.Collection[models.User]) (loggedOut bool) {
	form := &Form{
		Title: "Create user",
		Fields: []*Field{
			{Name: "username", Label: "Username", Required: true},
			{Name: "password", Label: "Password", Required: true, Masked: true},
			{Name: "email", Label: "Email", Required: true},
			{Name: "role", Label: "Role", Options: []string{"USER", "ADMIN"}, Value: "USER"},
		},
	}

	submitted, err := a.runForm(ctx, form, func(ctx context.Context, values map[string]string) error {
		_, err := a.users.Create(ctx, models.CreateUserRequest{
			Username: values["username"],
			Password: values["password"],
			Email:    values["email"],
			Role:     models.Role(values["role"]),
		})
		return err
	})
	if err != nil {
		return false
	}
	if submitted {
		printlnFn("User created.")
		if rerr := col.Refresh(ctx); rerr != nil && a.renderError(ctx, rerr) {
			return true
		}
	}
	return false
}

func (a *App) editUser(ctx context.Context, col *view.Collection[models.User], args []string) (loggedOut bool) {
	target, ok := findUser(col.Items(), args)
	if !ok {
		return false
	}

	// Email is immutable after creation; it is shown but never sent.
	printlnFn("Editing " + target.Email + " (email cannot be changed)")
	form := &Form{
		Title: "Edit user",
		Fields: []*Field{
			{Name: "firstname", Label: "First name", Required: true, Value: target.Firstname},
			{Name: "lastname", Label: "Last name", Required: true, Value: target.Lastname},
			{Name: "role", Label: "Role", Options: []string{"USER", "ADMIN"}, Value: string(target.Role)},
		},
	}

	submitted, err := a.runForm(ctx, form, func(ctx context.Context, values map[string]string) error {
		_, err := a.users.Update(ctx, target.ID, models.UpdateUserRequest{
			Firstname: values["firstname"],
			Lastname:  values["lastname"],
			Role:      models.Role(values["role"]),
		})
		return err
	})
	if err != nil {
		return false
	}
	if submitted {
		printlnFn("User updated.")
		if rerr := col.Refresh(ctx); rerr != nil && a.renderError(ctx, rerr) {
			return true
		}
	}
	return false
}

func (a *App) deleteUser(ctx context.Context, col *view.Collection[models.User], args []string) (loggedOut bool) {
	target, ok := findUser(col.Items(), args)
	if !ok {
		return false
	}

	// Hard guard: the delete request for the seed admin is never issued,
	// regardless of the caller's role or confirmation.
	if target.Email == seedAdminEmail {
		printlnFn("The seed admin account cannot be deleted.")
		return false
	}

	if !a.confirm("Delete user " + target.Email + "?") {
		printlnFn("Cancelled.")
		return false
	}

	if err := a.users.Delete(ctx, target.ID); err != nil {
		return a.renderError(ctx, err)
	}
	printlnFn("User deleted.")
	if err := col.Refresh(ctx); err != nil && a.renderError(ctx, err) {
		return true
	}
	return false
}

// findUser resolves "<id>" from args against the cached collection.
func findUser(users []models.User, args []string) (models.User, bool) {
	if len(args) == 0 {
		printlnFn("Usage: edit|delete <id>")
		return models.User{}, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Invalid id:", args[0])
		return models.User{}, false
	}
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	printlnFn("No user with id", args[0])
	return models.User{}, false
}
