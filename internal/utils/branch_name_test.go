package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"saveit.dev/saveit/internal/utils"
)

func TestBranchNameFromDir(t *testing.T) {
	cases := []struct {
		dir  string
		want string
	}{
		{"/home/dev/feature-x", "feature-x"},
		{"/home/dev/feature-x/", "feature-x"},
		{"relative/path/my-branch", "my-branch"},
		{"plain", "plain"},
	}

	for _, tc := range cases {
		t.Run(tc.dir, func(t *testing.T) {
			require.Equal(t, tc.want, utils.BranchNameFromDir(tc.dir))
		})
	}
}
