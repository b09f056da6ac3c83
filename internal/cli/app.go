// Package cli implements the userctl commands: register, verify, passwd,
// and exists. Usage:
//
//	userctl <command> <username> [flags]
//
// Passwords are read from the terminal, never from the command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmitrijs2005/userstore/internal/config"
	"github.com/dmitrijs2005/userstore/internal/logging"
	"github.com/dmitrijs2005/userstore/user"
	"github.com/dmitrijs2005/userstore/user/mongostore"
	"github.com/dmitrijs2005/userstore/user/pgstore"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  user.Store
	out    io.Writer

	// close releases the backend connection, when one was opened.
	close func(context.Context) error
}

// NewApp connects to the backend selected by cfg and returns a ready App.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	app := &App{config: cfg, logger: logger, out: os.Stdout}

	switch cfg.Backend {
	case config.BackendMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("mongo connect error: %w", err)
		}
		store := mongostore.New(client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection))
		if err := store.EnsureIndexes(ctx); err != nil {
			return nil, fmt.Errorf("mongo index error: %w", err)
		}
		app.store = store
		app.close = client.Disconnect

	case config.BackendPostgres:
		db, err := pgstore.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		app.store = pgstore.New(db)
		app.close = func(context.Context) error { return db.Close() }

	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	return app, nil
}

// newAppWithStore builds an App over an already-constructed store. Test seam.
func newAppWithStore(cfg *config.Config, logger logging.Logger, store user.Store, out io.Writer) *App {
	return &App{config: cfg, logger: logger, store: store, out: out}
}

// Run dispatches a single command and returns its error. args holds the
// positional arguments: command name and username.
func (a *App) Run(ctx context.Context, args []string) error {
	defer func() {
		if a.close != nil {
			if err := a.close(ctx); err != nil {
				a.logger.Warn(ctx, "error closing backend", "error", err)
			}
		}
	}()

	if len(args) < 2 {
		return errors.New("usage: userctl <register|verify|passwd|exists> <username> [flags]")
	}
	command, username := args[0], args[1]

	switch command {
	case "register":
		return a.register(ctx, username)
	case "verify":
		return a.verify(ctx, username)
	case "passwd":
		return a.passwd(ctx, username)
	case "exists":
		return a.exists(ctx, username)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *App) realmOpts() []user.Option {
	if a.config.DefaultRealm != "" {
		return []user.Option{user.WithRealm(a.config.DefaultRealm)}
	}
	return nil
}

func (a *App) register(ctx context.Context, username string) error {
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	u, err := user.Register(ctx, a.store, username, string(password), a.realmOpts()...)
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "registered user", "username", u.Username, "realm", u.Realm)
	fmt.Fprintln(a.out, "Success!")
	return nil
}

func (a *App) verify(ctx context.Context, username string) error {
	u, err := user.New(a.store, username, a.realmOpts()...)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	ok, err := u.VerifyPassword(ctx, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, ok)
	return nil
}

func (a *App) passwd(ctx context.Context, username string) error {
	u, err := user.New(a.store, username, a.realmOpts()...)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := u.SetPassword(ctx, string(password)); err != nil {
		return err
	}

	a.logger.Info(ctx, "password updated", "username", u.Username, "realm", u.Realm)
	fmt.Fprintln(a.out, "Success!")
	return nil
}

func (a *App) exists(ctx context.Context, username string) error {
	u, err := user.New(a.store, username, a.realmOpts()...)
	if err != nil {
		return err
	}

	ok, err := u.Exists(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, ok)
	return nil
}
