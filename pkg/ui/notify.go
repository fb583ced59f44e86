package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/softlink/pkg/types"
)

// Notifier emits verbosity-gated operation notices. The zero value is
// not usable; construct with New.
type Notifier struct {
	w     io.Writer
	level types.VerboseLevel

	renameStyle lipgloss.Style
	linkStyle   lipgloss.Style
	okStyle     lipgloss.Style
}

// New creates a Notifier writing to w at the given level. Styles are
// bound to w, so buffers and pipes get unstyled output.
func New(w io.Writer, level types.VerboseLevel) *Notifier {
	r := lipgloss.NewRenderer(w)
	return &Notifier{
		w:           w,
		level:       level,
		renameStyle: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "208", Dark: "214"}),
		linkStyle:   r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "78"}),
		okStyle:     r.NewStyle().Faint(true),
	}
}

// Level returns the configured verbosity level.
func (n *Notifier) Level() types.VerboseLevel {
	return n.level
}

// Rename announces a backup rename. Printed at VerboseRenameFile and up.
func (n *Notifier) Rename(from, to string) {
	if n.level < types.VerboseRenameFile {
		return
	}
	fmt.Fprintf(n.w, "%s %s -> %s\n", n.renameStyle.Render("renaming"), from, to)
}

// Linking announces a link creation. Printed at VerboseCreateLink and up.
func (n *Notifier) Linking(dest, source string, isDir bool) {
	if n.level < types.VerboseCreateLink {
		return
	}
	fmt.Fprintf(n.w, "%s %s <- %s%s\n", n.linkStyle.Render("linking "), dest, source, dirSuffix(isDir))
}

// LinkOK announces an already-correct link. Printed at VerboseLinkOK only.
func (n *Notifier) LinkOK(dest, source string, isDir bool) {
	if n.level < types.VerboseLinkOK {
		return
	}
	fmt.Fprintf(n.w, "%s %s <- %s%s\n", n.okStyle.Render("exists  "), dest, source, dirSuffix(isDir))
}

func dirSuffix(isDir bool) string {
	if isDir {
		return "/"
	}
	return ""
}
