package items

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKeyBinding(t *testing.T) {
	tests := []struct {
		input   string
		want    KeyBinding
		wantStr string
		wantErr bool
	}{
		{input: "f5", want: KeyBinding{Key: "f5"}, wantStr: "f5"},
		{input: "ctrl+k", want: KeyBinding{Key: "k", Ctrl: true}, wantStr: "ctrl+k"},
		{input: "Shift+Alt+X", want: KeyBinding{Key: "x", Alt: true, Shift: true}, wantStr: "alt+shift+x"},
		{input: " control + option + f2 ", want: KeyBinding{Key: "f2", Ctrl: true, Alt: true}, wantStr: "alt+ctrl+f2"},
		{input: "", wantErr: true},
		{input: "ctrl+", wantErr: true},
		{input: "super+k", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKeyBinding(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantStr, got.String())
		})
	}
}

func TestKeyBinding_Matches(t *testing.T) {
	kb, err := ParseKeyBinding("ctrl+k")
	require.NoError(t, err)

	require.True(t, kb.Matches("ctrl+k"))
	require.True(t, kb.Matches("CTRL+K"))
	require.False(t, kb.Matches("alt+ctrl+k"))
	require.False(t, kb.Matches("k"))
	require.False(t, kb.Matches(""))
}
