// pkg/config/locations_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero memory filesystem
// PURPOSE: Test parsing and loading of locations.toml

package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/softlink/pkg/config"
	"github.com/arthur-debert/softlink/pkg/errors"
	"github.com/arthur-debert/softlink/pkg/filesystem"
	"github.com/arthur-debert/softlink/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		want     types.LinkSpec
		wantCode errors.ErrorCode
	}{
		{
			name: "typical_mapping",
			content: `".bashrc" = "rcfiles/bashrc"
".config/app" = "config_folder_for_app"
".local/bin/my-script" = "my-script.py"
`,
			want: types.LinkSpec{
				".bashrc":              "rcfiles/bashrc",
				".config/app":          "config_folder_for_app",
				".local/bin/my-script": "my-script.py",
			},
		},
		{
			name:    "empty_value_is_removal_marker",
			content: `".oldfile" = ""` + "\n",
			want:    types.LinkSpec{".oldfile": ""},
		},
		{
			name:    "empty_file",
			content: "",
			want:    types.LinkSpec{},
		},
		{
			name:     "non_string_value",
			content:  `".bashrc" = 42` + "\n",
			wantCode: errors.ErrConfigParse,
		},
		{
			name:     "malformed_toml",
			content:  `".bashrc" = `,
			wantCode: errors.ErrConfigParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := config.Parse([]byte(tt.content))

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
				return
			}

			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Empty(t, spec)
			} else {
				assert.Equal(t, tt.want, spec)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	memFS := afero.NewMemMapFs()
	fsys := filesystem.NewAfero(memFS)

	err := afero.WriteFile(memFS, "/dotfiles/locations.toml",
		[]byte(`".vimrc" = "vim/vimrc"`+"\n"), 0644)
	require.NoError(t, err)

	spec, err := config.Load(fsys, "/dotfiles/locations.toml")
	require.NoError(t, err)
	assert.Equal(t, types.LinkSpec{".vimrc": "vim/vimrc"}, spec)
}

func TestLoadMissingFile(t *testing.T) {
	fsys := filesystem.NewAfero(afero.NewMemMapFs())

	_, err := config.Load(fsys, "/dotfiles/locations.toml")
	require.Error(t, err)
	assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(err))
}
