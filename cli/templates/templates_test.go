package templates

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	cases := []struct {
		name     string
		template string
		errMsg   string
	}{
		{"simple", "base", ""},
		{"with dash and digits", "go-service-2", ""},
		{"with underscore", "my_template", ""},
		{"empty", "", "cannot be empty"},
		{"dot", ".", "reserved"},
		{"dot dot", "..", "reserved"},
		{"slash", "a/b", "path separators"},
		{"backslash", `a\b`, "path separators"},
		{"leading dot", ".hidden", "must not start with a dot"},
		{"staging prefix", ".stg-base-123", "must not start with a dot"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateName(tc.template)
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestStorageDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/home", "templates", "base"),
		StorageDir(filepath.Join("/home", "templates"), "base"))
}

func TestStagingNaming(t *testing.T) {
	pattern := StagingPattern("base")
	assert.Equal(t, ".stg-base-*", pattern)

	assert.True(t, IsStagingDir(".stg-base-82451"))
	assert.False(t, IsStagingDir("base"))
	assert.False(t, IsStagingDir("stg-base"))
}
