package recurrence

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRecursionCount is returned when a recursion count is neither an
// unsigned integer nor infinity.
var ErrInvalidRecursionCount = errors.New("invalid recursion count")

const infinityTag = "Infinity"

// Budget is how many more times a task may recur: a finite count or
// unbounded. The zero value is a finite budget of 0.
type Budget struct {
	n         uint
	unbounded bool
}

func Finite(n uint) Budget { return Budget{n: n} }

func Unbounded() Budget { return Budget{unbounded: true} }

// ParseBudget reads an unsigned integer, or "infinity"/"infinite" in any case.
func ParseBudget(text string) (Budget, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "infinity" || s == "infinite" {
		return Unbounded(), nil
	}

	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return Budget{}, fmt.Errorf("%w: %q", ErrInvalidRecursionCount, text)
	}
	return Finite(uint(n)), nil
}

func (b Budget) IsUnbounded() bool { return b.unbounded }

// Remaining returns the finite count. ok is false for an unbounded budget.
func (b Budget) Remaining() (n uint, ok bool) {
	if b.unbounded {
		return 0, false
	}
	return b.n, true
}

// IsExhausted reports whether the budget is finite and zero.
func (b Budget) IsExhausted() bool {
	return !b.unbounded && b.n == 0
}

// Take consumes up to want recurrences and returns how many were granted
// along with the budget that is left.
func (b Budget) Take(want uint) (granted uint, rest Budget) {
	if b.unbounded {
		return want, b
	}
	granted = min(want, b.n)
	return granted, Finite(b.n - granted)
}

func (b Budget) String() string {
	if b.unbounded {
		return "infinity"
	}
	return strconv.FormatUint(uint64(b.n), 10)
}

// MarshalJSON writes a number, or "Infinity" when unbounded.
func (b Budget) MarshalJSON() ([]byte, error) {
	if b.unbounded {
		return json.Marshal(infinityTag)
	}
	return json.Marshal(b.n)
}

// UnmarshalJSON accepts a number, "Infinity", or the tagged {"U32": n} form.
func (b *Budget) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if !strings.EqualFold(tag, infinityTag) {
			return fmt.Errorf("%w: %q", ErrInvalidRecursionCount, tag)
		}
		*b = Unbounded()
		return nil
	}

	var n uint
	if err := json.Unmarshal(data, &n); err == nil {
		*b = Finite(n)
		return nil
	}

	var tagged struct {
		U32 *uint `json:"U32"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil || tagged.U32 == nil {
		return fmt.Errorf("%w: %s", ErrInvalidRecursionCount, data)
	}
	*b = Finite(*tagged.U32)
	return nil
}
