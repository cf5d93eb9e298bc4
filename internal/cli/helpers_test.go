package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"promptadmin/internal/logging"
	"promptadmin/internal/models"
	"promptadmin/internal/session"
)

// captureOutput routes printlnFn into a buffer for the duration of the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		return fmt.Fprintln(&buf, a...)
	}
	t.Cleanup(func() { printlnFn = orig })
	return &buf
}

// scriptInput replaces the interactive input seams with a scripted queue of
// answers. Every prompt, regardless of kind, pops the next answer.
func scriptInput(t *testing.T, answers ...string) {
	t.Helper()
	queue := answers
	pop := func() (string, error) {
		if len(queue) == 0 {
			return "", io.EOF
		}
		next := queue[0]
		queue = queue[1:]
		return next, nil
	}

	origText, origPw, origMulti, origChoice := getSimpleText, getPassword, getMultiline, getChoice
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return pop()
	}
	getPassword = func(w io.Writer) ([]byte, error) {
		answer, err := pop()
		return []byte(answer), err
	}
	getMultiline = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return pop()
	}
	getChoice = func(reader *bufio.Reader, prompt string, options []string, def string, w io.Writer) (string, error) {
		answer, err := pop()
		if err != nil {
			return "", err
		}
		if answer == "" {
			return def, nil
		}
		return answer, nil
	}
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline, getChoice = origText, origPw, origMulti, origChoice
	})
}

type fakeSession struct {
	identity    *session.Identity
	loginErr    error
	logoutCalls int
}

func (s *fakeSession) Login(ctx context.Context, email, password string) (*session.Identity, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.identity, nil
}

func (s *fakeSession) Logout(ctx context.Context) error {
	s.logoutCalls++
	s.identity = nil
	return nil
}

func (s *fakeSession) IsAuthenticated(ctx context.Context) bool {
	return s.identity != nil
}

func (s *fakeSession) CurrentUser(ctx context.Context) (*session.Identity, error) {
	return s.identity, nil
}

type fakeUsers struct {
	users       []models.User
	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
	createErr   error
	updateErr   error
	deleteErr   error
}

func (f *fakeUsers) List(ctx context.Context) ([]models.User, error) {
	f.listCalls++
	return f.users, nil
}

func (f *fakeUsers) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	f.createCalls++
	if f.createErr != nil {
		return models.User{}, f.createErr
	}
	return models.User{ID: 99, Email: req.Email, Role: req.Role}, nil
}

func (f *fakeUsers) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return models.User{}, f.updateErr
	}
	return models.User{ID: id, Firstname: req.Firstname, Lastname: req.Lastname, Role: req.Role}, nil
}

func (f *fakeUsers) Delete(ctx context.Context, id int64) error {
	f.deleteCalls++
	return f.deleteErr
}

type fakeSharedPrompts struct {
	prompts         []models.SharedPrompt
	listCalls       int
	toggleLikeCalls int
	incrementCalls  int
	createCalls     int
	deleteCalls     int
	toggleLikeErr   error
	createErr       error
}

func (f *fakeSharedPrompts) List(ctx context.Context) ([]models.SharedPrompt, error) {
	f.listCalls++
	return f.prompts, nil
}

func (f *fakeSharedPrompts) Popular(ctx context.Context) ([]models.SharedPrompt, error) {
	return f.prompts, nil
}

func (f *fakeSharedPrompts) MostUsed(ctx context.Context) ([]models.SharedPrompt, error) {
	return f.prompts, nil
}

func (f *fakeSharedPrompts) Mine(ctx context.Context) ([]models.SharedPrompt, error) {
	return f.prompts, nil
}

func (f *fakeSharedPrompts) Create(ctx context.Context, req models.CreateSharedPromptRequest) (models.SharedPrompt, error) {
	f.createCalls++
	if f.createErr != nil {
		return models.SharedPrompt{}, f.createErr
	}
	return models.SharedPrompt{ID: 50, Title: req.Title}, nil
}

func (f *fakeSharedPrompts) ToggleLike(ctx context.Context, id int64) (models.SharedPrompt, error) {
	f.toggleLikeCalls++
	if f.toggleLikeErr != nil {
		return models.SharedPrompt{}, f.toggleLikeErr
	}
	return models.SharedPrompt{ID: id}, nil
}

func (f *fakeSharedPrompts) IncrementUsage(ctx context.Context, id int64) (models.SharedPrompt, error) {
	f.incrementCalls++
	return models.SharedPrompt{ID: id}, nil
}

func (f *fakeSharedPrompts) Delete(ctx context.Context, id int64) error {
	f.deleteCalls++
	return nil
}

type fakeUserPrompts struct {
	prompts        []models.UserPrompt
	listCalls      int
	favoriteCalls  int
	incrementCalls int
	createCalls    int
	deleteCalls    int
	createErr      error
}

func (f *fakeUserPrompts) List(ctx context.Context) ([]models.UserPrompt, error) {
	f.listCalls++
	return f.prompts, nil
}

func (f *fakeUserPrompts) ListFavorites(ctx context.Context) ([]models.UserPrompt, error) {
	var favs []models.UserPrompt
	for _, p := range f.prompts {
		if p.IsFavorite {
			favs = append(favs, p)
		}
	}
	return favs, nil
}

func (f *fakeUserPrompts) Create(ctx context.Context, req models.CreateUserPromptRequest) (models.UserPrompt, error) {
	f.createCalls++
	if f.createErr != nil {
		return models.UserPrompt{}, f.createErr
	}
	return models.UserPrompt{ID: 60, Title: req.Title}, nil
}

func (f *fakeUserPrompts) ToggleFavorite(ctx context.Context, id int64) (models.UserPrompt, error) {
	f.favoriteCalls++
	return models.UserPrompt{ID: id}, nil
}

func (f *fakeUserPrompts) IncrementUsage(ctx context.Context, id int64) (models.UserPrompt, error) {
	f.incrementCalls++
	return models.UserPrompt{ID: id}, nil
}

func (f *fakeUserPrompts) Delete(ctx context.Context, id int64) error {
	f.deleteCalls++
	return nil
}

type fakeUsage struct {
	stats          models.UsageStats
	statsCalls     int
	incrementCalls int
}

func (f *fakeUsage) Stats(ctx context.Context) (models.UsageStats, error) {
	f.statsCalls++
	return f.stats, nil
}

func (f *fakeUsage) Increment(ctx context.Context, exampleIndex int) error {
	f.incrementCalls++
	return nil
}

type fakeAI struct {
	configured bool
	calls      []string
}

func (f *fakeAI) Suggestions(ctx context.Context, prompt string) (string, error) {
	f.calls = append(f.calls, "suggestions:"+prompt)
	return "suggestion text", nil
}

func (f *fakeAI) Test(ctx context.Context, prompt string) (string, error) {
	f.calls = append(f.calls, "test:"+prompt)
	return "model output", nil
}

func (f *fakeAI) Improve(ctx context.Context, prompt string) (string, error) {
	f.calls = append(f.calls, "improve:"+prompt)
	return "improved text", nil
}

func (f *fakeAI) GenerateAlternative(ctx context.Context, originalPrompt, improvement string) (string, error) {
	f.calls = append(f.calls, "alt:"+originalPrompt+"/"+improvement)
	return "alternative text", nil
}

func (f *fakeAI) Status(ctx context.Context) (bool, error) {
	f.calls = append(f.calls, "status")
	return f.configured, nil
}

type fakeLocalUsage struct {
	counts      map[int]int64
	recordCalls []int
}

func (f *fakeLocalUsage) RecordRun(ctx context.Context, exampleIndex int) error {
	f.recordCalls = append(f.recordCalls, exampleIndex)
	if f.counts == nil {
		f.counts = map[int]int64{}
	}
	f.counts[exampleIndex]++
	return nil
}

func (f *fakeLocalUsage) Counts(ctx context.Context) (map[int]int64, error) {
	return f.counts, nil
}

// fakes bundles every stubbed dependency of a test App.
type fakes struct {
	session     *fakeSession
	users       *fakeUsers
	shared      *fakeSharedPrompts
	userPrompts *fakeUserPrompts
	usage       *fakeUsage
	ai          *fakeAI
	local       *fakeLocalUsage
	out         *bytes.Buffer
}

// newTestApp assembles an App over fakes. Callers adjust individual fakes
// before driving a screen.
func newTestApp(t *testing.T) (*App, *fakes) {
	t.Helper()

	f := &fakes{
		session:     &fakeSession{},
		users:       &fakeUsers{},
		shared:      &fakeSharedPrompts{},
		userPrompts: &fakeUserPrompts{},
		usage:       &fakeUsage{},
		ai:          &fakeAI{},
		local:       &fakeLocalUsage{},
		out:         &bytes.Buffer{},
	}

	app := &App{
		log:         logging.NewTextLogger(io.Discard, "error"),
		session:     f.session,
		users:       f.users,
		userPrompts: f.userPrompts,
		shared:      f.shared,
		usage:       f.usage,
		ai:          f.ai,
		local:       f.local,
		reader:      bufio.NewReader(strings.NewReader("")),
		out:         f.out,
	}
	return app, f
}
