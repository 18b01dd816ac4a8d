// Package doctor provides diagnostic and repair functionality for the
// ph environment and configuration.
//
// A diagnostic pass covers three categories:
//
//   - Environment issues: the git binary is missing from PATH or does
//     not respond.
//
//   - Configuration issues: malformed key names, and values the
//     workflows cannot use, such as an unrecognized pull strategy, an
//     unparseable file size limit, an unknown theme, or a boolean
//     spelling that silently counts as false under the strict bool
//     contract.
//
//   - Workspace issues: a missing backup directory while backups are
//     enabled, and a worktree link pointing at a repository that is gone.
//
// # Usage
//
// Run diagnostics:
//
//	report := doctor.Diagnose(ctx, session)
//
// Apply repairs:
//
//	result := doctor.Fix(session, report.Issues)
//
// [Diagnose] never changes anything. [Fix] applies the automatic
// repairs and returns guidance for the issues it cannot repair.
//
// # Issue Categories
//
// Issues are grouped into three categories:
//
//   - [CategoryEnvironment]: Problems with external tools
//   - [CategoryConfig]: Problems with configuration keys or values
//   - [CategoryWorkspace]: Problems with the session directory
//
// Each [Issue] includes a description and a fix action verb.
package doctor
