// Package cli is the interactive shell of the prompt-admin client: a
// top-level loop whose available commands depend on authentication state,
// one screen per area of the admin panel, and prompt-driven forms for
// create/edit flows.
package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"promptadmin/internal/api"
	"promptadmin/internal/common"
	"promptadmin/internal/config"
	"promptadmin/internal/logging"
	"promptadmin/internal/models"
	"promptadmin/internal/session"
	"promptadmin/internal/store"
)

// seedAdminEmail is the bootstrap account every deployment ships with. It is
// never deletable from the UI regardless of the caller's role; the delete
// request is not even issued.
const seedAdminEmail = "admin@example.com"

// Consumer-side interfaces over the API wrappers. The concrete api types
// satisfy them; tests provide fakes.

type sessionService interface {
	Login(ctx context.Context, email, password string) (*session.Identity, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	CurrentUser(ctx context.Context) (*session.Identity, error)
}

type userDirectory interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	Update(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

type userPromptAPI interface {
	List(ctx context.Context) ([]models.UserPrompt, error)
	ListFavorites(ctx context.Context) ([]models.UserPrompt, error)
	Create(ctx context.Context, req models.CreateUserPromptRequest) (models.UserPrompt, error)
	ToggleFavorite(ctx context.Context, id int64) (models.UserPrompt, error)
	IncrementUsage(ctx context.Context, id int64) (models.UserPrompt, error)
	Delete(ctx context.Context, id int64) error
}

type sharedPromptAPI interface {
	List(ctx context.Context) ([]models.SharedPrompt, error)
	Popular(ctx context.Context) ([]models.SharedPrompt, error)
	MostUsed(ctx context.Context) ([]models.SharedPrompt, error)
	Mine(ctx context.Context) ([]models.SharedPrompt, error)
	Create(ctx context.Context, req models.CreateSharedPromptRequest) (models.SharedPrompt, error)
	ToggleLike(ctx context.Context, id int64) (models.SharedPrompt, error)
	IncrementUsage(ctx context.Context, id int64) (models.SharedPrompt, error)
	Delete(ctx context.Context, id int64) error
}

type usageAPI interface {
	Stats(ctx context.Context) (models.UsageStats, error)
	Increment(ctx context.Context, exampleIndex int) error
}

type aiAPI interface {
	Suggestions(ctx context.Context, prompt string) (string, error)
	Test(ctx context.Context, prompt string) (string, error)
	Improve(ctx context.Context, prompt string) (string, error)
	GenerateAlternative(ctx context.Context, originalPrompt, improvement string) (string, error)
	Status(ctx context.Context) (bool, error)
}

type usageRecorder interface {
	RecordRun(ctx context.Context, exampleIndex int) error
	Counts(ctx context.Context) (map[int]int64, error)
}

// App wires the shell to the session store, the API wrappers, and the local
// database.
type App struct {
	config      *config.Config
	log         logging.Logger
	session     sessionService
	users       userDirectory
	userPrompts userPromptAPI
	shared      sharedPromptAPI
	usage       usageAPI
	ai          aiAPI
	local       usageRecorder
	store       *store.Store
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp opens the local database and builds the full service graph. The
// token source is attached to the HTTP core after construction because the
// auth wrapper itself needs the core first.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	st, err := store.Open(ctx, cfg.LocalDBPath)
	if err != nil {
		log.Error(ctx, "error initializing local database", "err", err)
		return nil, err
	}

	client := api.NewClient(cfg.ServerBaseURL, cfg.RequestTimeout, nil, log)
	sess := session.NewStore(st.Metadata, api.NewAuth(client), log)
	client.SetTokenSource(sess)

	return &App{
		config:      cfg,
		log:         log,
		session:     sess,
		users:       api.NewUsers(client),
		userPrompts: api.NewUserPrompts(client),
		shared:      api.NewSharedPrompts(client),
		usage:       api.NewExampleUsage(client),
		ai:          api.NewAI(client),
		local:       st.Usage,
		store:       st,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run drives the shell until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.store != nil {
			_ = a.store.Close()
		}
	}()
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.IsAuthenticated(ctx)
}

// status renders the prompt decoration: "(subject role)" when the identity
// decodes, "" otherwise.
func (a *App) status(ctx context.Context) string {
	identity, err := a.session.CurrentUser(ctx)
	if err != nil || identity == nil {
		return ""
	}
	return "(" + identity.Subject + " " + string(identity.Role) + ")"
}

// renderError prints err for the acting screen. A 401 means the stored token
// is no longer accepted: the session is cleared locally and the caller must
// drop back to the public shell; renderError reports that with true.
func (a *App) renderError(ctx context.Context, err error) (loggedOut bool) {
	if err == nil {
		return false
	}
	if errors.Is(err, common.ErrUnauthorized) {
		printlnFn("Your session has expired. Please login again.")
		if lerr := a.session.Logout(ctx); lerr != nil {
			a.log.Error(ctx, "forced logout failed", "err", lerr)
		}
		return true
	}
	printlnFn("Error:", err.Error())
	return false
}
