package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_KeyAssignments(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{
			name:     "Reserve uses enter",
			binding:  km.Reserve,
			expected: []string{"enter"},
		},
		{
			name:     "Release uses x",
			binding:  km.Release,
			expected: []string{"x"},
		},
		{
			name:     "Animate uses a",
			binding:  km.Animate,
			expected: []string{"a"},
		},
		{
			name:     "Loop uses l",
			binding:  km.Loop,
			expected: []string{"l"},
		},
		{
			name:     "Flip uses f",
			binding:  km.Flip,
			expected: []string{"f"},
		},
		{
			name:     "Quit uses q and ctrl+c",
			binding:  km.Quit,
			expected: []string{"q", "ctrl+c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestDefaultKeyMap_NavigationUsesArrowsOnly(t *testing.T) {
	km := DefaultKeyMap()

	require.Equal(t, []string{"up"}, km.Up.Keys())
	require.Equal(t, []string{"down"}, km.Down.Keys())
	require.Equal(t, []string{"left"}, km.Left.Keys())
	require.Equal(t, []string{"right"}, km.Right.Keys())
}

func TestDefaultKeyMap_HelpText(t *testing.T) {
	km := DefaultKeyMap()

	help := km.Animate.Help()
	require.Equal(t, "a", help.Key)
	require.Equal(t, "play marquee", help.Desc)

	help = km.Reserve.Help()
	require.NotEmpty(t, help.Key)
	require.NotEmpty(t, help.Desc)
}
