package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/models"
)

var (
	errUsage        = errors.New("wrong arguments")
	errUnknownMovie = errors.New("unknown movie id, list or search first")
	errQuit         = errors.New("quit")
)

var _ Client = (*App)(nil)

type App struct {
	client    *AsyncClient
	in        *bufio.Scanner
	out       io.Writer
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewApp(client *AsyncClient, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{
		client:    client,
		in:        bufio.NewScanner(in),
		out:       out,
		buildInfo: models.NewAppBuildInfo("", "", ""),
		logger:    logger,
	}
}

// SetBuildInfo sets what the "version" command prints.
func (a *App) SetBuildInfo(info models.AppBuildInfo) {
	a.buildInfo = info
}

// Run reads commands until "quit", end of input or cancellation of ctx.
// Command errors are printed and do not stop the loop.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, titleStyle.Render("movie-manager")+" "+helpStyle.Render("type 'help' for commands"))

	for {
		line, err := prompt(a.in, a.out, a.promptText())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		err = a.Exec(ctx, strings.Fields(line))
		switch {
		case errors.Is(err, errQuit):
			fmt.Fprintln(a.out, "Bye!")
			return nil
		case err != nil:
			fmt.Fprintln(a.out, renderError(err))
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (a *App) promptText() string {
	if a.client.IsAuthenticated() {
		return "movies (logged in)> "
	}
	return "movies> "
}

// Exec runs a single command given as separate words.
func (a *App) Exec(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}

	cmd, rest := args[0], args[1:]
	a.logger.Debug().Str("command", cmd).Msg("executing command")

	switch cmd {
	case "help":
		fmt.Fprintln(a.out, renderHelp())
		return nil
	case "quit", "exit":
		return errQuit
	case "version":
		fmt.Fprintln(a.out, a.buildInfo)
		return nil
	case "login":
		return a.login(ctx, rest)
	case "weblogin":
		return a.webLogin(ctx)
	case "logout":
		return a.logout(ctx)
	case "watchlist":
		return a.showList(ctx, "Watchlist", a.client.Watchlist)
	case "favorites":
		return a.showList(ctx, "Favorites", a.client.Favorites)
	case "search":
		return a.search(ctx, rest)
	case "watch":
		return a.toggle(ctx, rest, "watchlist", a.client.ToggleWatchlist)
	case "favorite":
		return a.toggle(ctx, rest, "favorites", a.client.ToggleFavorite)
	case "poster":
		return a.poster(ctx, rest)
	default:
		return fmt.Errorf("unknown command %q, type 'help'", cmd)
	}
}

func (a *App) login(ctx context.Context, args []string) error {
	var username string
	switch len(args) {
	case 0:
		var err error
		if username, err = prompt(a.in, a.out, "Username: "); err != nil {
			return err
		}
	case 1:
		username = args[0]
	default:
		return fmt.Errorf("%w: login [username]", errUsage)
	}

	password, err := promptPassword(a.out)
	if err != nil {
		return err
	}

	account, err := await(ctx, func(ctx context.Context, done func(models.Account, error)) *Call {
		return a.client.Login(ctx, models.Credentials{Username: username, Password: password}, done)
	})
	if err != nil {
		return err
	}

	return a.welcome(ctx, account)
}

func (a *App) webLogin(ctx context.Context) error {
	url, err := await(ctx, a.client.BeginWebLogin)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Approve the request in your browser:")
	fmt.Fprintln(a.out, "  "+url)
	if err = copyToClipboard(url); err != nil {
		a.logger.Debug().Err(err).Msg("clipboard unavailable")
	} else {
		fmt.Fprintln(a.out, helpStyle.Render("  (copied to clipboard)"))
	}

	if _, err = prompt(a.in, a.out, "Press Enter once approved... "); err != nil {
		return err
	}

	account, err := await(ctx, a.client.CompleteWebLogin)
	if err != nil {
		return err
	}

	return a.welcome(ctx, account)
}

func (a *App) welcome(ctx context.Context, account models.Account) error {
	name := account.Username
	if account.Name != "" {
		name = account.Name
	}
	fmt.Fprintf(a.out, "Logged in as %s (account %d)\n", name, account.ID)

	if _, err := await(ctx, errOnly(a.client.Refresh)); err != nil {
		a.logger.Warn().Err(err).Msg("loading lists after login failed")
		fmt.Fprintln(a.out, renderError(fmt.Errorf("lists not loaded: %w", err)))
	}
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if _, err := await(ctx, errOnly(a.client.Logout)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) showList(ctx context.Context, title string, fetch func(context.Context, func([]models.Movie, error)) *Call) error {
	movies, err := await(ctx, fetch)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderMovies(title, movies))
	return nil
}

func (a *App) search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: search <title>", errUsage)
	}
	query := strings.Join(args, " ")

	movies, err := await(ctx, func(ctx context.Context, done func([]models.Movie, error)) *Call {
		return a.client.Search(ctx, query, done)
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderMovies(fmt.Sprintf("Results for %q", query), movies))
	return nil
}

func (a *App) toggle(
	ctx context.Context,
	args []string,
	list string,
	modify func(context.Context, models.Movie, func(bool, error)) *Call,
) error {
	movie, err := a.movieArg(args, 1)
	if err != nil {
		return err
	}

	added, err := await(ctx, func(ctx context.Context, done func(bool, error)) *Call {
		return modify(ctx, movie, done)
	})
	if err != nil {
		return err
	}

	if added {
		fmt.Fprintf(a.out, "Added %q to %s\n", movie.Title, list)
	} else {
		fmt.Fprintf(a.out, "Removed %q from %s\n", movie.Title, list)
	}
	return nil
}

func (a *App) poster(ctx context.Context, args []string) error {
	movie, err := a.movieArg(args, 2)
	if err != nil {
		return err
	}
	path := args[1]

	data, err := await(ctx, func(ctx context.Context, done func([]byte, error)) *Call {
		return a.client.Poster(ctx, movie, done)
	})
	if err != nil {
		return err
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save poster: %w", err)
	}
	fmt.Fprintf(a.out, "Saved poster of %q to %s (%d bytes)\n", movie.Title, path, len(data))
	return nil
}

// movieArg resolves args[0] as the id of a known movie; want is the exact
// number of arguments the command takes.
func (a *App) movieArg(args []string, want int) (models.Movie, error) {
	if len(args) != want {
		return models.Movie{}, fmt.Errorf("%w: expected %d argument(s)", errUsage, want)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return models.Movie{}, fmt.Errorf("%w: invalid movie id %q", errUsage, args[0])
	}

	movie, ok := a.client.FindMovie(id)
	if !ok {
		return models.Movie{}, fmt.Errorf("%w: %d", errUnknownMovie, id)
	}
	return movie, nil
}

// await starts an asynchronous call and blocks until its callback ran. If
// ctx ends first the call is cancelled and its callback still awaited.
func await[T any](ctx context.Context, start func(context.Context, func(T, error)) *Call) (T, error) {
	type result struct {
		value T
		err   error
	}

	results := make(chan result, 1)
	call := start(ctx, func(v T, err error) {
		results <- result{value: v, err: err}
	})

	select {
	case r := <-results:
		return r.value, r.err
	case <-ctx.Done():
		call.Cancel()
		r := <-results
		return r.value, r.err
	}
}

// errOnly adapts an operation that reports only an error to await.
func errOnly(start func(context.Context, func(error)) *Call) func(context.Context, func(struct{}, error)) *Call {
	return func(ctx context.Context, done func(struct{}, error)) *Call {
		return start(ctx, func(err error) { done(struct{}{}, err) })
	}
}
