// Package gitstate classifies the operation a repository is in the middle of
// by probing marker files in its control directory.
package gitstate

import (
	"path/filepath"

	"github.com/xvierd/promptline/internal/domain"
	"github.com/xvierd/promptline/internal/ports"
)

// Marker files and directories git leaves behind during an operation.
const (
	rebaseMergeDir  = "rebase-merge"
	rebaseApplyDir  = "rebase-apply"
	interactiveFile = "interactive"
	rebasingFile    = "rebasing"
	applyingFile    = "applying"
	mergeHead       = "MERGE_HEAD"
	cherryPickHead  = "CHERRY_PICK_HEAD"
	revertHead      = "REVERT_HEAD"
	bisectLog       = "BISECT_LOG"
)

// markers records which markers were found.
type markers struct {
	rebaseMerge       bool
	rebaseInteractive bool
	rebaseApply       bool
	rebase            bool
	am                bool
	merge             bool
	cherryPick        bool
	revert            bool
	bisect            bool
}

func scan(gitDir string, fs ports.ExistenceChecker) markers {
	exists := func(elem ...string) bool {
		return fs.Exists(filepath.Join(append([]string{gitDir}, elem...)...))
	}

	var m markers
	m.rebaseMerge = exists(rebaseMergeDir)
	m.rebaseInteractive = m.rebaseMerge && exists(rebaseMergeDir, interactiveFile)
	m.rebaseApply = exists(rebaseApplyDir)
	m.rebase = m.rebaseApply && exists(rebaseApplyDir, rebasingFile)
	m.am = m.rebaseApply && exists(rebaseApplyDir, applyingFile)
	m.merge = exists(mergeHead)
	m.cherryPick = exists(cherryPickHead)
	m.revert = exists(revertHead)
	m.bisect = exists(bisectLog)
	return m
}

// Detect returns the in-progress operations of the repository whose control
// directory is gitDir. Tags are always in the same order: the rebase group
// first, then MERGE, CHERRY-PICK, REVERT and BISECT.
func Detect(gitDir string, fs ports.ExistenceChecker) domain.RepoState {
	m := scan(gitDir, fs)

	var state domain.RepoState
	if m.rebaseInteractive {
		state = append(state, domain.RepoOpRebaseInteractive)
	} else if m.rebaseMerge {
		state = append(state, domain.RepoOpRebaseMerge)
	}

	if m.rebase {
		state = append(state, domain.RepoOpRebase)
	}
	if m.am {
		state = append(state, domain.RepoOpAm)
	}
	// rebase-apply without either marker: git is between steps
	if m.rebaseApply && !(m.rebase || m.am) {
		state = append(state, domain.RepoOpRebaseOrAm)
	}

	if m.merge {
		state = append(state, domain.RepoOpMerge)
	}
	if m.cherryPick {
		state = append(state, domain.RepoOpCherryPick)
	}
	if m.revert {
		state = append(state, domain.RepoOpRevert)
	}
	if m.bisect {
		state = append(state, domain.RepoOpBisect)
	}
	return state
}
