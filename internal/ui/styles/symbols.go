package styles

import (
	"github.com/charmbracelet/x/ansi"
)

// Symbols holds the icon/symbol set based on nerdfont configuration
type Symbols struct {
	Clean   string
	Dirty   string
	Failed  string
	Skipped string
}

// Default symbols (ASCII-safe)
var defaultSymbols = Symbols{
	Clean:   "●",
	Dirty:   "○",
	Failed:  "✕",
	Skipped: "◌",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	Clean:   "", // nf-fa-check
	Dirty:   "", // nf-fa-warning
	Failed:  "", // nf-fa-times
	Skipped: "", // nf-fa-ban
}

// useNerdfont tracks whether nerd font symbols are enabled
var useNerdfont bool

// currentSymbols holds the active symbol set
var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// CleanSymbol returns the symbol for clean repositories
func CleanSymbol() string {
	return currentSymbols.Clean
}

// DirtySymbol returns the symbol for repositories with pending changes
func DirtySymbol() string {
	return currentSymbols.Dirty
}

// FailedSymbol returns the symbol for repositories that could not be checked
func FailedSymbol() string {
	return currentSymbols.Failed
}

// SkippedSymbol returns the symbol for skipped entries
func SkippedSymbol() string {
	return currentSymbols.Skipped
}

// RepoStateSymbol returns just the symbol for a repository check result.
// A failed check wins over the clean/dirty distinction.
func RepoStateSymbol(clean, failed bool) string {
	switch {
	case failed:
		return currentSymbols.Failed
	case clean:
		return currentSymbols.Clean
	default:
		return currentSymbols.Dirty
	}
}

// FormatRepoState returns a formatted string with symbol and state word.
// The wording matches the log output of the batch status operation.
func FormatRepoState(clean, failed bool) string {
	switch {
	case failed:
		return currentSymbols.Failed + " error"
	case clean:
		return currentSymbols.Clean + " clean"
	default:
		return currentSymbols.Dirty + " dirty"
	}
}

// RepoStateStyle returns the style matching a repository check result.
func RepoStateStyle(clean, failed bool) func(...string) string {
	switch {
	case failed:
		return ErrorStyle.Render
	case clean:
		return SuccessStyle.Render
	default:
		return WarningStyle.Render
	}
}

// FormatRepoRef returns the repository name wrapped in an OSC 8
// hyperlink pointing at its directory. Returns the plain name when
// path is empty so output stays copyable in dumb terminals.
func FormatRepoRef(name, path string) string {
	if name == "" {
		return ""
	}
	if path == "" {
		return PrimaryStyle.Render(name)
	}
	styled := PrimaryStyle.Underline(true).Render(name)
	return ansi.SetHyperlink("file://"+path) + styled + ansi.ResetHyperlink()
}
