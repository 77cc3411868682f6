// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/infra/config"
	"github.com/runoshun/taskpad/internal/infra/diskvstore"
	"github.com/runoshun/taskpad/internal/infra/executor"
	"github.com/runoshun/taskpad/internal/infra/jsonstore"
	"github.com/runoshun/taskpad/internal/infra/logging"
	"github.com/runoshun/taskpad/internal/infra/notify"
	"github.com/runoshun/taskpad/internal/infra/sqlitestore"
	"github.com/runoshun/taskpad/internal/persistence"
	"github.com/runoshun/taskpad/internal/planner"
	"github.com/runoshun/taskpad/internal/scheduler"
	"github.com/runoshun/taskpad/internal/usecase"
)

// Options holds the command-line overrides applied before the container opens.
type Options struct {
	ConfigPath string // Config file path; empty selects the default
	DataDir    string // Overrides data_dir from the config file
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
// Config commands only need the config ports; everything else requires Open.
type Container struct {
	// Ports (interfaces bound to implementations)
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Clock         domain.Clock
	Executor      domain.CommandExecutor
	Notifier      domain.Notifier
	Logger        domain.Logger
	Store         domain.SlotStore

	// Pointer fields
	AppConfig *domain.Config
	Planner   *planner.Planner

	closers []io.Closer
	opts    Options
}

// New creates a Container for the given options. No files are touched until Open.
func New(opts Options) *Container {
	c := &Container{
		Clock:    domain.RealClock{},
		Executor: executor.NewClient(),
	}
	c.SetOptions(opts)
	return c
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// Open still has to be called to load the store into the planner.
func NewWithDeps(cfg *domain.Config, store domain.SlotStore, notifier domain.Notifier, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		AppConfig: cfg,
		Store:     store,
		Notifier:  notifier,
		Clock:     clock,
		Logger:    logger,
	}
}

// SetOptions rebinds the config ports to the given overrides.
// It has no effect on a container that is already open.
func (c *Container) SetOptions(opts Options) {
	if c.Planner != nil {
		return
	}
	c.opts = opts
	loader := config.NewLoader(opts.ConfigPath)
	if opts.DataDir != "" {
		loader = loader.WithDataDir(opts.DataDir)
	}
	c.ConfigLoader = loader
	c.ConfigManager = config.NewManager(loader.Path())
}

// Open loads the configuration, opens the store and the log file, and loads
// the persisted snapshot into the planner. Calling Open again is a no-op.
func (c *Container) Open(ctx context.Context) error {
	if c.Planner != nil {
		return nil
	}

	if c.AppConfig == nil {
		if c.ConfigLoader == nil {
			return errors.New("no config loader")
		}
		cfg, err := c.ConfigLoader.Load()
		if err != nil {
			return err
		}
		c.AppConfig = cfg
	}
	cfg := c.AppConfig

	if c.Logger == nil {
		logger := logging.New(cfg.DataDir, logging.ParseLevel(cfg.Log.Level))
		c.Logger = logger
		c.closers = append(c.closers, logger)
	}

	if c.Store == nil {
		store, err := c.openStore(cfg)
		if err != nil {
			_ = c.Close()
			return err
		}
		c.Store = store
	}

	if c.Notifier == nil {
		n, err := notify.New(cfg.Notify, c.Executor, c.Logger)
		if err != nil {
			_ = c.Close()
			return err
		}
		c.Notifier = n
	}

	horizon, urgent, err := cfg.Deadline.Window()
	if err != nil {
		_ = c.Close()
		return err
	}

	sched := scheduler.New(c.Notifier, c.Clock, c.Logger, scheduler.Window{Horizon: horizon, Urgent: urgent})
	p := planner.New(persistence.New(c.Store), sched, c.Logger)
	if err := p.Open(ctx); err != nil {
		_ = c.Close()
		return err
	}
	c.Planner = p

	c.Logger.Debug("app", fmt.Sprintf("opened %s store in %s", cfg.Store.Backend, cfg.DataDir))
	return nil
}

// openStore creates the slot backend selected by [store] backend.
func (c *Container) openStore(cfg *domain.Config) (domain.SlotStore, error) {
	switch cfg.Store.Backend {
	case "", domain.BackendJSON:
		s := jsonstore.New(domain.SnapshotPath(cfg.DataDir))
		if !s.IsInitialized() {
			if err := s.Initialize(); err != nil {
				return nil, fmt.Errorf("initialize store: %w", err)
			}
		}
		return s, nil
	case domain.BackendDiskv:
		return diskvstore.New(domain.SlotsDir(cfg.DataDir)), nil
	case domain.BackendSQLite:
		s, err := sqlitestore.Open(domain.DatabasePath(cfg.DataDir))
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, s)
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, cfg.Store.Backend)
	}
}

// Close releases the store and the log file.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// UseCase factory methods

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Planner, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Planner)
}

// SetTaskStatusUseCase returns a new SetTaskStatus use case.
func (c *Container) SetTaskStatusUseCase() *usecase.SetTaskStatus {
	return usecase.NewSetTaskStatus(c.Planner, c.Logger)
}

// SetTaskDeadlineUseCase returns a new SetTaskDeadline use case.
func (c *Container) SetTaskDeadlineUseCase() *usecase.SetTaskDeadline {
	return usecase.NewSetTaskDeadline(c.Planner, c.Logger)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Planner, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Planner, c.Logger)
}

// PruneTasksUseCase returns a new PruneTasks use case.
func (c *Container) PruneTasksUseCase() *usecase.PruneTasks {
	return usecase.NewPruneTasks(c.Planner, c.Logger)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Planner, c.Logger)
}

// NewNoteUseCase returns a new NewNote use case.
func (c *Container) NewNoteUseCase() *usecase.NewNote {
	return usecase.NewNewNote(c.Planner, c.Logger)
}

// ListNotesUseCase returns a new ListNotes use case.
func (c *Container) ListNotesUseCase() *usecase.ListNotes {
	return usecase.NewListNotes(c.Planner)
}

// ShowNoteUseCase returns a new ShowNote use case.
func (c *Container) ShowNoteUseCase() *usecase.ShowNote {
	return usecase.NewShowNote(c.Planner)
}

// EditNoteUseCase returns a new EditNote use case.
func (c *Container) EditNoteUseCase() *usecase.EditNote {
	return usecase.NewEditNote(c.Planner, c.Logger)
}

// DeleteNoteUseCase returns a new DeleteNote use case.
func (c *Container) DeleteNoteUseCase() *usecase.DeleteNote {
	return usecase.NewDeleteNote(c.Planner, c.Logger)
}

// ShowQueueUseCase returns a new ShowQueue use case.
func (c *Container) ShowQueueUseCase() *usecase.ShowQueue {
	return usecase.NewShowQueue(c.Planner)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
