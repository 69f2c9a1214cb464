package domain

import "strings"

// RepoOp is an operation a repository can be in the middle of.
type RepoOp string

const (
	RepoOpRebaseInteractive RepoOp = "REBASE-i"
	RepoOpRebaseMerge       RepoOp = "REBASE-m"
	RepoOpRebase            RepoOp = "REBASE"
	RepoOpAm                RepoOp = "AM"
	RepoOpRebaseOrAm        RepoOp = "REBASE/AM"
	RepoOpMerge             RepoOp = "MERGE"
	RepoOpCherryPick        RepoOp = "CHERRY-PICK"
	RepoOpRevert            RepoOp = "REVERT"
	RepoOpBisect            RepoOp = "BISECT"
)

// Severity classifies how many operations are in flight at once.
type Severity int

const (
	SeverityNone Severity = iota
	SeveritySingle
	SeverityMultiple
)

// RepoState is the ordered set of in-progress operations of a repository.
// A nil or empty RepoState means nothing is in progress.
type RepoState []RepoOp

// Tags returns the operations as plain strings, in order.
func (s RepoState) Tags() []string {
	tags := make([]string, len(s))
	for i, op := range s {
		tags[i] = string(op)
	}
	return tags
}

// String joins the tags with single spaces.
func (s RepoState) String() string {
	return strings.Join(s.Tags(), " ")
}

// Severity returns SeverityMultiple when more than one operation is in flight.
func (s RepoState) Severity() Severity {
	switch len(s) {
	case 0:
		return SeverityNone
	case 1:
		return SeveritySingle
	default:
		return SeverityMultiple
	}
}
