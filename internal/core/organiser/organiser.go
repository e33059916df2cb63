// Package organiser holds the task list and the two most recent session
// dates, and applies accrual when the date changes.
package organiser

import (
	"errors"
	"fmt"
	"time"

	"github.com/colonyops/cadence/internal/core/accrual"
	"github.com/colonyops/cadence/internal/core/calendar"
	"github.com/colonyops/cadence/internal/core/recurrence"
)

var (
	// ErrDuplicateTaskName is returned when adding a task whose name is taken.
	ErrDuplicateTaskName = errors.New("task already exists")
	// ErrTaskNotFound is returned when no task has the given name.
	ErrTaskNotFound = errors.New("task does not exist")
	// ErrNothingToComplete is returned when completing a task with nothing due.
	ErrNothingToComplete = errors.New("task has nothing due")
	// ErrEmptyTaskName is returned when adding a task without a name.
	ErrEmptyTaskName = errors.New("task name cannot be empty")
)

// Organiser is the persisted state: tasks in insertion order plus the last
// two distinct dates the program ran on.
type Organiser struct {
	Tasks        []Task        `json:"tasks"`
	CurrentDate  calendar.Date `json:"current_date"`
	PreviousDate calendar.Date `json:"previous_date"`
}

// Accrued records what a date transition added to one task.
type Accrued struct {
	Task   string
	Added  uint
	Budget recurrence.Budget
}

// New returns an empty organiser whose dates are both today.
func New(today calendar.Date) *Organiser {
	return &Organiser{
		Tasks:        []Task{},
		CurrentDate:  today,
		PreviousDate: today,
	}
}

// Elapsed returns the time between the previous and current session dates.
func (o *Organiser) Elapsed() calendar.Delta {
	return calendar.Elapsed(o.PreviousDate, o.CurrentDate)
}

// Advance moves the organiser to today. When today differs from the
// recorded current date, the current date becomes the previous one and
// every task accrues the occurrences that came due in between. changed is
// false, and nothing is modified, when the date is unchanged.
func (o *Organiser) Advance(today calendar.Date, weekStart time.Weekday) (accrued []Accrued, changed bool, err error) {
	if today == o.CurrentDate {
		return nil, false, nil
	}

	t := accrual.NewTransition(o.CurrentDate, today, weekStart)

	tasks := make([]Task, len(o.Tasks))
	copy(tasks, o.Tasks)

	for i := range tasks {
		task := &tasks[i]
		outstanding, budget, err := accrual.Accrue(task.Rule, t, task.Outstanding, task.Budget)
		if err != nil {
			return nil, false, fmt.Errorf("accrue %q: %w", task.Name, err)
		}
		if added := outstanding - task.Outstanding; added > 0 {
			accrued = append(accrued, Accrued{Task: task.Name, Added: added, Budget: budget})
		}
		task.Outstanding, task.Budget = outstanding, budget
	}

	o.Tasks = tasks
	o.PreviousDate, o.CurrentDate = o.CurrentDate, today
	return accrued, true, nil
}

// Find returns the task called name.
func (o *Organiser) Find(name string) (Task, bool) {
	i, ok := o.index(name)
	if !ok {
		return Task{}, false
	}
	return o.Tasks[i], true
}

// Add creates a task that is due once immediately. recursions is the total
// number of occurrences allowed, including the first; empty means unbounded.
func (o *Organiser) Add(name, cadence, recursions string) (Task, error) {
	if name == "" {
		return Task{}, ErrEmptyTaskName
	}
	if _, exists := o.index(name); exists {
		return Task{}, fmt.Errorf("%w: %q", ErrDuplicateTaskName, name)
	}

	rule, err := recurrence.Parse(cadence)
	if err != nil {
		return Task{}, err
	}

	budget := recurrence.Unbounded()
	if recursions != "" {
		total, err := recurrence.ParseBudget(recursions)
		if err != nil {
			return Task{}, err
		}
		if total.IsExhausted() {
			return Task{}, fmt.Errorf("%w: %q: must be at least 1", recurrence.ErrInvalidRecursionCount, recursions)
		}
		// creating the task uses up its first occurrence
		_, budget = total.Take(1)
	}

	task := Task{
		Name:        name,
		Rule:        rule,
		Outstanding: 1,
		Budget:      budget,
	}
	o.Tasks = append(o.Tasks, task)
	return task, nil
}

// Complete marks one due occurrence of the task done. The task is pruned
// when it is a one-off date, or when nothing is left due and it may not
// recur again. It returns the task as it stood after completion.
func (o *Organiser) Complete(name string) (task Task, pruned bool, err error) {
	i, ok := o.index(name)
	if !ok {
		return Task{}, false, fmt.Errorf("%w: %q", ErrTaskNotFound, name)
	}

	t := &o.Tasks[i]
	if t.Outstanding == 0 {
		return *t, false, fmt.Errorf("%w: %q", ErrNothingToComplete, name)
	}
	t.Outstanding--
	task = *t

	if task.IsOneOff() || task.IsExhausted() {
		o.swapRemove(i)
		return task, true, nil
	}
	return task, false, nil
}

// Remove deletes the task regardless of its state.
func (o *Organiser) Remove(name string) (Task, error) {
	i, ok := o.index(name)
	if !ok {
		return Task{}, fmt.Errorf("%w: %q", ErrTaskNotFound, name)
	}

	task := o.Tasks[i]
	o.swapRemove(i)
	return task, nil
}

func (o *Organiser) index(name string) (int, bool) {
	for i, t := range o.Tasks {
		if t.Name == name {
			return i, true
		}
	}
	return -1, false
}

// swapRemove deletes index i by moving the last task into its slot.
func (o *Organiser) swapRemove(i int) {
	last := len(o.Tasks) - 1
	o.Tasks[i] = o.Tasks[last]
	o.Tasks = o.Tasks[:last]
}
