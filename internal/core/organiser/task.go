package organiser

import (
	"encoding/json"
	"fmt"

	"github.com/colonyops/cadence/internal/core/recurrence"
)

// Task is a named chore with a cadence. Outstanding counts the occurrences
// that are due but not yet completed; Budget limits how many more times the
// task may recur.
type Task struct {
	Name        string
	Rule        recurrence.Rule
	Outstanding uint
	Budget      recurrence.Budget
}

// IsExhausted reports whether nothing is due and the task may not recur again.
func (t Task) IsExhausted() bool {
	return t.Outstanding == 0 && t.Budget.IsExhausted()
}

// IsOneOff reports whether the task happens on a single date.
func (t Task) IsOneOff() bool {
	_, ok := t.Rule.(recurrence.SpecificDate)
	return ok
}

type taskJSON struct {
	Name              string            `json:"name"`
	HowOften          json.RawMessage   `json:"how_often"`
	QuantityRemaining uint              `json:"quantity_remaining"`
	Recursions        recurrence.Budget `json:"recursions"`
}

func (t Task) MarshalJSON() ([]byte, error) {
	rule, err := recurrence.MarshalRule(t.Rule)
	if err != nil {
		return nil, fmt.Errorf("task %q: %w", t.Name, err)
	}

	return json.Marshal(taskJSON{
		Name:              t.Name,
		HowOften:          rule,
		QuantityRemaining: t.Outstanding,
		Recursions:        t.Budget,
	})
}

func (t *Task) UnmarshalJSON(data []byte) error {
	var raw taskJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	rule, err := recurrence.UnmarshalRule(raw.HowOften)
	if err != nil {
		return fmt.Errorf("task %q: %w", raw.Name, err)
	}

	*t = Task{
		Name:        raw.Name,
		Rule:        rule,
		Outstanding: raw.QuantityRemaining,
		Budget:      raw.Recursions,
	}
	return nil
}
