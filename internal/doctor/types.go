package doctor

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryEnvironment represents problems with external tools.
	CategoryEnvironment IssueCategory = "environment"
	// CategoryConfig represents problems with configuration keys or values.
	CategoryConfig IssueCategory = "config"
	// CategoryWorkspace represents problems with the session directory.
	CategoryWorkspace IssueCategory = "workspace"
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        // config key, tool name, or path
	Description string        // human-readable description
	FixAction   string        // what Fix would do
	Category    IssueCategory // issue category
	Path        string        // filesystem target for directory repairs
}

// Stats tracks counts by category.
type Stats struct {
	EnvironmentIssues int // missing or unresponsive tools
	ConfigValid       int // config keys that passed every check
	ConfigIssues      int // config keys with problems
	WorkspaceIssues   int // session directory problems
	Fixable           int // issues Fix repairs without user input
}

// Report is the outcome of one diagnostic pass.
type Report struct {
	Issues []Issue
	Stats  Stats
}

// Fixable returns the subset of issues Fix repairs automatically.
func (r Report) Fixable() []Issue {
	var fixable []Issue
	for _, issue := range r.Issues {
		if autoFixable(issue.FixAction) {
			fixable = append(fixable, issue)
		}
	}
	return fixable
}
