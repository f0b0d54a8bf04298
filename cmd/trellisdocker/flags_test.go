// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDockerArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty value yields no tokens",
			raw:  "",
			want: nil,
		},
		{
			name: "plain flags",
			raw:  "--no-cache --pull",
			want: []string{"--no-cache", "--pull"},
		},
		{
			name: "double quotes keep spaces",
			raw:  `--build-arg "EXTRA=a b c"`,
			want: []string{"--build-arg", "EXTRA=a b c"},
		},
		{
			name: "single quotes keep spaces",
			raw:  `-e 'A=b c'`,
			want: []string{"-e", "A=b c"},
		},
		{
			name: "collapses extra whitespace",
			raw:  "  --rm   --name  box ",
			want: []string{"--rm", "--name", "box"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := splitDockerArgs(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitDockerArgs_Invalid(t *testing.T) {
	t.Parallel()

	_, err := splitDockerArgs(`--build-arg "unterminated`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse --docker-args")
}
