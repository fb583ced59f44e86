// pkg/paths/resolve_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None (pure path math)
// PURPOSE: Test link spec resolution and scope containment

package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/softlink/pkg/errors"
	"github.com/arthur-debert/softlink/pkg/paths"
	"github.com/arthur-debert/softlink/pkg/types"
)

func TestResolve(t *testing.T) {
	srcDir := "/dotfiles"
	dstDir := "/home/testuser"

	tests := []struct {
		name     string
		spec     types.LinkSpec
		want     types.ResolvedLinkSpec
		wantCode errors.ErrorCode
	}{
		{
			name: "relative_paths_join_roots",
			spec: types.LinkSpec{".bashrc": "rcfiles/bashrc"},
			want: types.ResolvedLinkSpec{
				{Dest: "/home/testuser/.bashrc", Source: "/dotfiles/rcfiles/bashrc"},
			},
		},
		{
			name: "removal_marker_has_empty_source",
			spec: types.LinkSpec{".oldfile": ""},
			want: types.ResolvedLinkSpec{
				{Dest: "/home/testuser/.oldfile", Source: ""},
			},
		},
		{
			name: "entries_sorted_by_destination",
			spec: types.LinkSpec{
				".zshrc":  "zsh/zshrc",
				".bashrc": "bash/bashrc",
				".vimrc":  "vim/vimrc",
			},
			want: types.ResolvedLinkSpec{
				{Dest: "/home/testuser/.bashrc", Source: "/dotfiles/bash/bashrc"},
				{Dest: "/home/testuser/.vimrc", Source: "/dotfiles/vim/vimrc"},
				{Dest: "/home/testuser/.zshrc", Source: "/dotfiles/zsh/zshrc"},
			},
		},
		{
			name:     "destination_escapes_root",
			spec:     types.LinkSpec{"../outside": "rcfiles/bashrc"},
			wantCode: errors.ErrScopeViolation,
		},
		{
			name:     "destination_traversal_inside_key",
			spec:     types.LinkSpec{".config/../../etc/passwd": "rcfiles/bashrc"},
			wantCode: errors.ErrScopeViolation,
		},
		{
			name:     "absolute_destination_outside_root",
			spec:     types.LinkSpec{"/etc/passwd": "rcfiles/bashrc"},
			wantCode: errors.ErrScopeViolation,
		},
		{
			name:     "destination_equal_to_root",
			spec:     types.LinkSpec{".": "rcfiles/bashrc"},
			wantCode: errors.ErrScopeViolation,
		},
		{
			name:     "absolute_source_rejected",
			spec:     types.LinkSpec{".bashrc": "/etc/passwd"},
			wantCode: errors.ErrScopeViolation,
		},
		{
			name:     "source_escapes_root",
			spec:     types.LinkSpec{".bashrc": "../secrets"},
			wantCode: errors.ErrScopeViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := paths.Resolve(tt.spec, srcDir, dstDir)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, resolved)
		})
	}
}

func TestResolveAbsoluteDestinationInsideRoot(t *testing.T) {
	// Absolute destinations are allowed as long as they stay inside
	// the install root.
	resolved, err := paths.Resolve(
		types.LinkSpec{"/home/testuser/.bashrc": "rcfiles/bashrc"},
		"/dotfiles", "/home/testuser")
	require.NoError(t, err)
	assert.Equal(t, types.ResolvedLinkSpec{
		{Dest: "/home/testuser/.bashrc", Source: "/dotfiles/rcfiles/bashrc"},
	}, resolved)
}

func TestResolveRelativeRoots(t *testing.T) {
	// Roots given as relative paths are absolutized first.
	resolved, err := paths.Resolve(types.LinkSpec{".vimrc": "vim/vimrc"}, "src", "dst")
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.True(t, filepath.IsAbs(resolved[0].Dest))
	assert.True(t, filepath.IsAbs(resolved[0].Source))
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "relative/path", paths.ExpandHome("relative/path"))
	assert.Equal(t, "/abs/path", paths.ExpandHome("/abs/path"))
	assert.Equal(t, "~user/path", paths.ExpandHome("~user/path"))

	expanded := paths.ExpandHome("~/.bashrc")
	assert.True(t, filepath.IsAbs(expanded))
	assert.Equal(t, ".bashrc", filepath.Base(expanded))
}
