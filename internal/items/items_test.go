package items

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCommand_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		fn      any
		args    []reflect.Value
		want    any
		wantErr string
	}{
		{
			name: "no results",
			fn:   func() {},
			want: nil,
		},
		{
			name: "value result",
			fn:   func(a, b int) int { return a + b },
			args: []reflect.Value{reflect.ValueOf(2), reflect.ValueOf(3)},
			want: 5,
		},
		{
			name:    "error result",
			fn:      func() error { return errors.New("boom") },
			wantErr: "boom",
		},
		{
			name: "nil error result",
			fn:   func() error { return nil },
			want: nil,
		},
		{
			name: "value and error",
			fn:   func(s string) (string, error) { return s + "!", nil },
			args: []reflect.Value{reflect.ValueOf("hi")},
			want: "hi!",
		},
		{
			name:    "value and failing error",
			fn:      func() (int, error) { return 0, errors.New("nope") },
			wantErr: "nope",
		},
		{
			name: "nil pointer result becomes nil",
			fn:   func() *int { return nil },
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := NewCommand(tt.fn)
			require.NoError(t, err)
			require.Equal(t, KindCommand, it.Kind())

			got, err := it.Action.(*Command).Call(tt.args)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNewCommand_Rejects(t *testing.T) {
	bad := []any{
		nil,
		42,
		func(...int) {},
		func() (int, int) { return 0, 0 },
		func() (int, int, error) { return 0, 0, nil },
	}
	for _, fn := range bad {
		_, err := NewCommand(fn)
		require.Error(t, err, "%T", fn)
	}

	require.Panics(t, func() { MustCommand("nope") })
}

func TestCommand_SignatureAndParams(t *testing.T) {
	it := MustCommand(func(x, y float64, name string) {})
	cmd := it.Action.(*Command)

	require.Len(t, cmd.Params(), 3)
	require.Equal(t, "<float64> <float64> <string>", cmd.Signature())
	require.Equal(t, "Command <float64> <float64> <string>", it.Describe())
}

func TestAcceptsArgs(t *testing.T) {
	var flag bool
	var text string
	var n int
	var idx int

	require.False(t, NewButton(func() {}).AcceptsArgs())
	require.True(t, BoolToggle(&flag).AcceptsArgs())
	require.True(t, StringText(&text).AcceptsArgs())
	require.True(t, IntNumber(&n, 1).AcceptsArgs())
	require.True(t, IndexChoice(&idx, "a", "b").AcceptsArgs())
	require.False(t, MustCommand(func() {}).AcceptsArgs())
	require.False(t, MustCommand(func() {}).WithGetter(func() any { return 1 }).AcceptsArgs())
	require.True(t, MustCommand(func(int) {}).AcceptsArgs())
}

func TestBoundHelpers(t *testing.T) {
	t.Run("int number", func(t *testing.T) {
		n := 10
		it := IntNumber(&n, 5)
		num := it.Action.(*Number)

		num.Step(1)
		require.Equal(t, 15, n)
		num.Step(-1)
		num.Step(-1)
		require.Equal(t, 5, n)

		require.True(t, num.Set("0x10"))
		require.Equal(t, "16", num.Get())
		require.False(t, num.Set("ten"))
		require.Equal(t, 16, n)

		require.True(t, num.Set("08"))
		require.Equal(t, 8, n)
		require.True(t, num.Set("010"))
		require.Equal(t, 10, n)
	})

	t.Run("float number", func(t *testing.T) {
		f := 1.5
		num := FloatNumber(&f, 0.5).Action.(*Number)
		num.Step(1)
		require.Equal(t, "2", num.Get())
		require.False(t, num.Set("x"))
	})

	t.Run("choice", func(t *testing.T) {
		idx := 1
		it := IndexChoice(&idx, "low", "medium", "high")
		ch := it.Action.(*Choice)

		name, ok := ch.Current()
		require.True(t, ok)
		require.Equal(t, "medium", name)
		require.Equal(t, "Choice [low|medium|high] = medium", it.Describe())

		idx = 7
		_, ok = ch.Current()
		require.False(t, ok)
	})

	t.Run("toggle describe", func(t *testing.T) {
		on := true
		it := BoolToggle(&on)
		require.Equal(t, "Toggle (on)", it.Describe())
		it.Action.(*Toggle).Set(false)
		require.Equal(t, "Toggle (off)", it.Describe())
	})

	t.Run("text describe", func(t *testing.T) {
		s := "hi"
		require.Equal(t, `Text = "hi"`, StringText(&s).Describe())
	})
}

func TestItem_Builders(t *testing.T) {
	it := NewButton(func() {}).
		WithTooltip("does a thing").
		WithHeader("Actions").
		WithKey("ctrl+r")

	require.Equal(t, "does a thing", it.Tooltip)
	require.Equal(t, "Actions", it.Header)
	require.NotNil(t, it.Key)
	require.Equal(t, "ctrl+r", it.Key.String())

	require.Panics(t, func() { NewButton(nil).WithKey("hyper+x") })

	it.Path = "game/reset"
	require.Equal(t, "game/reset: Button", it.String())
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "Button", KindButton.String())
	require.Equal(t, "Command", KindCommand.String())
	require.Equal(t, "Unknown", Kind(99).String())
}
