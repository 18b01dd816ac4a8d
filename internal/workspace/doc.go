// Package workspace holds the cached introspection state for one
// working directory.
//
// A Session answers the questions workflows ask over and over (is this
// a repository, what branch is checked out, does a file exist, what
// does config key K resolve to) without repeating filesystem probes or
// config reads. Two cache layers back the answers: coarse per-question
// memos that Optimize clears wholesale once they outgrow fixed
// thresholds, and small recency caches underneath the file-existence
// and config resolvers. Sessions are not safe for concurrent use.
package workspace
