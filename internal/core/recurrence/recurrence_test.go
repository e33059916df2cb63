package recurrence

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/cadence/internal/core/calendar"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Rule
	}{
		{input: "daily", want: Daily{}},
		{input: "Weekly", want: Weekly{}},
		{input: "MONTHLY", want: Monthly{}},
		{input: "yearly", want: Yearly{}},
		{input: "  daily ", want: Daily{}},
		{input: "sunday", want: SpecificWeekday{Day: time.Sunday}},
		{input: "Wednesday", want: SpecificWeekday{Day: time.Wednesday}},
		{input: "07/May/2027", want: SpecificDate{Date: calendar.NewDate(2027, time.May, 7)}},
		{input: "7/may/2027", want: SpecificDate{Date: calendar.NewDate(2027, time.May, 7)}},
		{input: "29/FEB/2024", want: SpecificDate{Date: calendar.NewDate(2024, time.February, 29)}},
		{input: "1/January/2030", want: SpecificDate{Date: calendar.NewDate(2030, time.January, 1)}},
		{input: "25/dec", want: SpecificDateEveryYear{Month: time.December, Day: 25}},
		{input: "29/Feb", want: SpecificDateEveryYear{Month: time.February, Day: 29}},
		{input: "3/september", want: SpecificDateEveryYear{Month: time.September, Day: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	inputs := []string{"", "fortnightly", "mon", "29/feb/2023", "32/jan", "30/feb", "2024-05-01", "1/may/24", "1/5/2024"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.ErrorIs(t, err, ErrInvalidCadence)
		})
	}
}

func TestRule_StringRoundTrip(t *testing.T) {
	rules := []Rule{
		Daily{},
		Weekly{},
		Monthly{},
		Yearly{},
		SpecificWeekday{Day: time.Friday},
		SpecificDate{Date: calendar.NewDate(2026, time.November, 3)},
		SpecificDateEveryYear{Month: time.February, Day: 29},
	}

	for _, r := range rules {
		t.Run(string(r.Kind()), func(t *testing.T) {
			got, err := Parse(r.String())
			require.NoError(t, err)
			assert.Equal(t, r, got)
		})
	}
}

func TestRuleJSON(t *testing.T) {
	tests := []struct {
		rule Rule
		want string
	}{
		{rule: Daily{}, want: `"Daily"`},
		{rule: Yearly{}, want: `"Yearly"`},
		{rule: SpecificWeekday{Day: time.Monday}, want: `{"SpecificWeekday":"Monday"}`},
		{rule: SpecificDate{Date: calendar.NewDate(2024, time.May, 1)}, want: `{"SpecificDate":"2024-05-01"}`},
		{rule: SpecificDateEveryYear{Month: time.May, Day: 1}, want: `{"SpecificDateEveryYear":{"month":5,"day":1}}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.rule.Kind()), func(t *testing.T) {
			bits, err := MarshalRule(tt.rule)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(bits))

			got, err := UnmarshalRule([]byte(tt.want))
			require.NoError(t, err)
			assert.Equal(t, tt.rule, got)
		})
	}
}

func TestUnmarshalRule_Invalid(t *testing.T) {
	inputs := []string{
		`"Fortnightly"`,
		`{}`,
		`{"Daily":null,"Weekly":null}`,
		`{"SpecificWeekday":"Funday"}`,
		`{"SpecificDate":"01/05/2024"}`,
		`{"SpecificDateEveryYear":{"month":2,"day":30}}`,
		`{"Sometimes":1}`,
		`42`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := UnmarshalRule([]byte(input))
			assert.ErrorIs(t, err, ErrInvalidCadence)
		})
	}
}

func TestParseBudget(t *testing.T) {
	tests := []struct {
		input   string
		want    Budget
		wantErr bool
	}{
		{input: "4", want: Finite(4)},
		{input: "0", want: Finite(0)},
		{input: "infinity", want: Unbounded()},
		{input: "Infinite", want: Unbounded()},
		{input: "INFINITY", want: Unbounded()},
		{input: "-1", wantErr: true},
		{input: "three", wantErr: true},
		{input: "4294967296", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBudget(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRecursionCount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBudget_Take(t *testing.T) {
	tests := []struct {
		name        string
		budget      Budget
		want        uint
		wantGranted uint
		wantRest    Budget
	}{
		{name: "unbounded grants everything", budget: Unbounded(), want: 9, wantGranted: 9, wantRest: Unbounded()},
		{name: "finite with room", budget: Finite(5), want: 2, wantGranted: 2, wantRest: Finite(3)},
		{name: "finite exact", budget: Finite(3), want: 3, wantGranted: 3, wantRest: Finite(0)},
		{name: "finite clamps", budget: Finite(3), want: 5, wantGranted: 3, wantRest: Finite(0)},
		{name: "exhausted grants nothing", budget: Finite(0), want: 4, wantGranted: 0, wantRest: Finite(0)},
		{name: "zero request", budget: Finite(2), want: 0, wantGranted: 0, wantRest: Finite(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			granted, rest := tt.budget.Take(tt.want)
			assert.Equal(t, tt.wantGranted, granted)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestBudget_State(t *testing.T) {
	assert.True(t, Finite(0).IsExhausted())
	assert.False(t, Finite(1).IsExhausted())
	assert.False(t, Unbounded().IsExhausted())

	n, ok := Finite(7).Remaining()
	assert.True(t, ok)
	assert.Equal(t, uint(7), n)

	_, ok = Unbounded().Remaining()
	assert.False(t, ok)

	assert.Equal(t, "7", Finite(7).String())
	assert.Equal(t, "infinity", Unbounded().String())
}

func TestBudgetJSON(t *testing.T) {
	bits, err := json.Marshal(Finite(3))
	require.NoError(t, err)
	assert.Equal(t, `3`, string(bits))

	bits, err = json.Marshal(Unbounded())
	require.NoError(t, err)
	assert.Equal(t, `"Infinity"`, string(bits))

	tests := []struct {
		input string
		want  Budget
	}{
		{input: `3`, want: Finite(3)},
		{input: `"Infinity"`, want: Unbounded()},
		{input: `{"U32": 12}`, want: Finite(12)},
	}
	for _, tt := range tests {
		var got Budget
		require.NoError(t, json.Unmarshal([]byte(tt.input), &got), tt.input)
		assert.Equal(t, tt.want, got)
	}

	for _, input := range []string{`-2`, `"Lots"`, `{"U64": 1}`, `null`} {
		var got Budget
		assert.Error(t, json.Unmarshal([]byte(input), &got), input)
	}
}
