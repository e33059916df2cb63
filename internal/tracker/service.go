// Package tracker runs one session against the organiser file: it loads or
// creates the organiser, applies the date transition, performs the requested
// change and writes the result back.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/colonyops/cadence/internal/core/agenda"
	"github.com/colonyops/cadence/internal/core/calendar"
	"github.com/colonyops/cadence/internal/core/logging"
	"github.com/colonyops/cadence/internal/core/organiser"
)

// ErrInvalidPattern is returned when a list filter is not a valid glob.
var ErrInvalidPattern = errors.New("invalid match pattern")

// Store persists the organiser.
type Store interface {
	Load(ctx context.Context) (*organiser.Organiser, bool, error)
	Save(ctx context.Context, o *organiser.Organiser) error
}

// Service is the session boundary used by every command.
type Service struct {
	store     Store
	clock     calendar.Clock
	weekStart time.Weekday
	log       zerolog.Logger
}

// NewService creates a new Service.
func NewService(store Store, clock calendar.Clock, weekStart time.Weekday, log zerolog.Logger) *Service {
	return &Service{
		store:     store,
		clock:     clock,
		weekStart: weekStart,
		log:       log.With().Str("component", "tracker").Logger().Hook(logging.ContextHook{}),
	}
}

// Open loads the organiser and brings it up to today. A missing organiser
// is created and saved; an existing one is saved only when the date moved.
func (s *Service) Open(ctx context.Context) (*organiser.Organiser, error) {
	today := calendar.Today(s.clock)

	o, found, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if !found {
		o = organiser.New(today)
		s.log.Info().Str("date", today.String()).Msg("creating organiser")
		return o, s.save(ctx, o)
	}

	from := o.CurrentDate
	accrued, changed, err := o.Advance(today, s.weekStart)
	if err != nil {
		return nil, fmt.Errorf("advance to %s: %w", today, err)
	}
	if !changed {
		return o, nil
	}

	elapsed := o.Elapsed()
	s.log.Info().
		Str("from", from.String()).
		Str("to", today.String()).
		Uint("days", elapsed.Days).
		Uint("months", elapsed.Months).
		Uint("years", elapsed.Years).
		Msg("date changed")

	for _, a := range accrued {
		s.log.Debug().
			Ctx(logging.WithTask(ctx, a.Task)).
			Uint("added", a.Added).
			Stringer("budget", a.Budget).
			Msg("occurrences accrued")
	}

	return o, s.save(ctx, o)
}

// Today returns the daily overview.
func (s *Service) Today(ctx context.Context) (agenda.View, error) {
	o, err := s.Open(ctx)
	if err != nil {
		return agenda.View{}, err
	}

	sections, err := agenda.Group(o.Tasks)
	if err != nil {
		return agenda.View{}, err
	}

	return agenda.View{
		Today:     o.CurrentDate,
		DaysSince: o.Elapsed().Days,
		Sections:  sections,
	}, nil
}

// Add creates a task and saves it.
func (s *Service) Add(ctx context.Context, name, cadence, recursions string) (organiser.Task, error) {
	o, err := s.Open(ctx)
	if err != nil {
		return organiser.Task{}, err
	}

	task, err := o.Add(name, cadence, recursions)
	if err != nil {
		return organiser.Task{}, err
	}

	ctx = logging.WithTask(ctx, task.Name)
	s.log.Info().Ctx(ctx).
		Stringer("rule", task.Rule).
		Stringer("budget", task.Budget).
		Msg("task added")

	return task, s.save(ctx, o)
}

// Complete marks one occurrence of a task done. pruned reports whether the
// task was removed because it will not come up again.
func (s *Service) Complete(ctx context.Context, name string) (task organiser.Task, pruned bool, err error) {
	o, err := s.Open(ctx)
	if err != nil {
		return organiser.Task{}, false, err
	}

	task, pruned, err = o.Complete(name)
	if err != nil {
		return task, false, err
	}

	ctx = logging.WithTask(ctx, name)
	s.log.Info().Ctx(ctx).Uint("outstanding", task.Outstanding).Msg("task completed")
	if pruned {
		s.log.Info().Ctx(ctx).Msg("task pruned")
	}

	return task, pruned, s.save(ctx, o)
}

// Remove deletes a task.
func (s *Service) Remove(ctx context.Context, name string) (organiser.Task, error) {
	o, err := s.Open(ctx)
	if err != nil {
		return organiser.Task{}, err
	}

	task, err := o.Remove(name)
	if err != nil {
		return organiser.Task{}, err
	}

	ctx = logging.WithTask(ctx, name)
	s.log.Info().Ctx(ctx).Msg("task removed")

	return task, s.save(ctx, o)
}

// List returns every task whose name matches the doublestar pattern, in
// stored order. An empty pattern matches everything.
func (s *Service) List(ctx context.Context, pattern string) ([]organiser.Task, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}

	o, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}

	if pattern == "" {
		return o.Tasks, nil
	}

	tasks := make([]organiser.Task, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		ok, err := doublestar.Match(pattern, t.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
		}
		if ok {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// Names returns the stored task names without advancing or saving the
// organiser. A missing store yields no names.
func (s *Service) Names(ctx context.Context) ([]string, error) {
	o, found, err := s.store.Load(ctx)
	if err != nil || !found {
		return nil, err
	}

	names := make([]string, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		names = append(names, t.Name)
	}
	return names, nil
}

// Import adds every entry in order. Nothing is saved unless all entries
// are added.
func (s *Service) Import(ctx context.Context, entries []ImportEntry) ([]organiser.Task, error) {
	o, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}

	added := make([]organiser.Task, 0, len(entries))
	for i, e := range entries {
		task, err := o.Add(e.Name, e.Cadence, string(e.Count))
		if err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, e.Name, err)
		}
		added = append(added, task)
	}

	s.log.Info().Int("count", len(added)).Msg("tasks imported")
	return added, s.save(ctx, o)
}

// Reset replaces the organiser with an empty one dated today. The existing
// file is not read, so a corrupt file can be recovered this way.
func (s *Service) Reset(ctx context.Context) error {
	today := calendar.Today(s.clock)
	s.log.Warn().Str("date", today.String()).Msg("resetting organiser")
	return s.save(ctx, organiser.New(today))
}

func (s *Service) save(ctx context.Context, o *organiser.Organiser) error {
	if err := s.store.Save(ctx, o); err != nil {
		s.log.Error().Ctx(ctx).Err(err).Msg("failed to save organiser")
		return err
	}
	return nil
}
