package cronexpr

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "step list range",
			line: "*/15 0 1,15 * 1-5 /usr/bin/find",
			want: "minute        0 15 30 45\n" +
				"hour          0\n" +
				"day of month  1 15\n" +
				"month         1 2 3 4 5 6 7 8 9 10 11 12\n" +
				"day of week   1 2 3 4 5\n" +
				"command       /usr/bin/find",
		},
		{
			name: "wildcards",
			line: "30 16 * * * tea",
			want: "minute        30\n" +
				"hour          16\n" +
				"day of month  1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19 20 21 22 23 24 25 26 27 28 29 30\n" +
				"month         1 2 3 4 5 6 7 8 9 10 11 12\n" +
				"day of week   0 1 2 3 4 5 6\n" +
				"command       tea",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.String())
		})
	}
}

func TestParse_BadFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{name: "missing day of week", line: "*/15 0 1,15 * /usr/bin/find"},
		{name: "missing command", line: "*/15 0 1,15 * 5"},
		{name: "empty", line: ""},
		{name: "trailing space leaves empty command", line: "* * * * * "},
		{name: "double space", line: "*  * * * * cmd"},
		{name: "command with spaces", line: "* * * * * echo hi"},
		{name: "tab separated", line: "*\t*\t*\t*\t*\tcmd"},
		{name: "bad field", line: "* * * 1-x * cmd"},
		{name: "zero step", line: "*/0 * * * * cmd"},
		{name: "inverted range", line: "* 5-1 * * * cmd"},
		{name: "named shortcut", line: "@daily cmd"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := Parse(tt.line)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrBadFormat)
		})
	}
}

func TestParse_ReportsFirstBadField(t *testing.T) {
	t.Parallel()

	_, err := Parse("* x * y * cmd")
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, Hour, fe.Field)
	assert.Equal(t, "x", fe.Raw)
}

func TestSchedule_Accessors(t *testing.T) {
	t.Parallel()

	s := MustParse("5,10 */8 3-4 12 0 backup.sh")
	assert.Equal(t, []int{5, 10}, s.Minute())
	assert.Equal(t, []int{0, 8, 16}, s.Hour())
	assert.Equal(t, []int{3, 4}, s.DayOfMonth())
	assert.Equal(t, []int{12}, s.Month())
	assert.Equal(t, []int{0}, s.DayOfWeek())
	assert.Equal(t, "backup.sh", s.Command())
	assert.Equal(t, "*/8", s.Raw(Hour))

	m := s.Minute()
	m[0] = 42
	assert.Equal(t, []int{5, 10}, s.Minute(), "accessors return copies")
}

func TestSchedule_NilSafe(t *testing.T) {
	t.Parallel()

	var s *Schedule
	assert.Equal(t, "", s.String())
	assert.Nil(t, s.Minute())
	assert.Equal(t, "", s.Command())
	assert.Equal(t, "", s.Raw(Minute))
}

func TestMustParse_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustParse("nope") })
}

// Rendered value lists fed back as explicit comma lists expand to the same values.
func TestSchedule_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, line := range []string{
		"*/15 0 1,15 * 1-5 /usr/bin/find",
		"30 16 * * * tea",
		"*/7 */5 */9 */4 */2 run",
		"0-59 0-23 1-31 1-12 0-6 all",
	} {
		s := MustParse(line)

		explicit := make([]string, 0, tokenCount)
		for _, kind := range Kinds() {
			explicit = append(explicit, JoinValues(s.Field(kind), ","))
		}
		explicit = append(explicit, s.Command())

		again, err := Parse(strings.Join(explicit, " "))
		require.NoError(t, err, line)
		for _, kind := range Kinds() {
			assert.Equal(t, s.Field(kind), again.Field(kind), "%s: %s", line, kind)
		}
		assert.Equal(t, s.String(), again.String())
	}
}

func TestParse_Concurrent(t *testing.T) {
	t.Parallel()

	const want = "minute        0 15 30 45\n" +
		"hour          0\n" +
		"day of month  1 15\n" +
		"month         1 2 3 4 5 6 7 8 9 10 11 12\n" +
		"day of week   1 2 3 4 5\n" +
		"command       /usr/bin/find"

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := Parse("*/15 0 1,15 * 1-5 /usr/bin/find")
			if assert.NoError(t, err) {
				assert.Equal(t, want, s.String())
			}
		}()
	}
	wg.Wait()
}

func TestJoinValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", JoinValues(nil, " "))
	assert.Equal(t, "1,2,30", JoinValues([]int{1, 2, 30}, ","))
}
