package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/prompt"
)

func TestConfirmer_Confirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
		wantPrompt string
	}{
		{name: "yes", input: "y\n", want: true, wantPrompt: "Bump core? [y/N] "},
		{name: "long no", input: "No\n", defaultYes: true, want: false, wantPrompt: "Bump core? [Y/n] "},
		{name: "empty takes default", input: "\n", defaultYes: true, want: true, wantPrompt: "Bump core? [Y/n] "},
		{name: "eof takes default", input: "", want: false, wantPrompt: "Bump core? [y/N] \n"},
		{name: "answer without newline", input: "yes", want: true, wantPrompt: "Bump core? [y/N] "},
		{
			name:       "asks again",
			input:      "maybe\ny\n",
			want:       true,
			wantPrompt: "Bump core? [y/N] Bump core? [y/N] ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := prompt.New(strings.NewReader(tt.input), &out, true)

			got, err := c.Confirm("Bump core?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPrompt, out.String())
		})
	}
}

func TestConfirmer_NonInteractive(t *testing.T) {
	var out bytes.Buffer
	c := prompt.New(strings.NewReader("y\n"), &out, false)

	got, err := c.Confirm("Commit changes?", false)
	require.NoError(t, err)
	assert.False(t, got)
	assert.Empty(t, out.String())
}

func TestConfirmer_GivesUp(t *testing.T) {
	var out bytes.Buffer
	c := prompt.New(strings.NewReader("a\nb\nc\nd\n"), &out, true)

	got, err := c.Confirm("Publish?", true)
	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, 3, strings.Count(out.String(), "Publish? [Y/n] "))
}
