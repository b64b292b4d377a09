package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestPlanner(t *testing.T, exec executor, manifest ...string) (*syncPlanner, *[]transferOutcome) {
	t.Helper()
	var recorded []transferOutcome
	p := &syncPlanner{
		exec:     exec,
		paths:    newPathSet(memProject(t, "a.txt", "lib/", "node_modules/"), defaultExclusions),
		target:   transferTarget{Host: "h", User: "u", Path: "/dst"},
		root:     "/proj",
		manifest: manifest,
		exclude:  defaultExclusions,
		record:   func(o transferOutcome) { recorded = append(recorded, o) },
	}
	return p, &recorded
}

// TestSyncPlanner_BulkSuccess_SingleOutcome verifies that a successful bulk
// mirror ends the protocol with exactly one outcome and no itemized copies.
func TestSyncPlanner_BulkSuccess_SingleOutcome(t *testing.T) {
	exec := &recordingExecutor{}
	p, recorded := newTestPlanner(t, exec, "a.txt", "lib/")
	require.NoError(t, p.run())
	require.Equal(t, plannerDone, p.state)
	require.False(t, p.itemized)
	require.Len(t, *recorded, 1)
	require.Equal(t, phaseBulk, (*recorded)[0].Phase)
	require.Nil(t, (*recorded)[0].Item)
	require.Len(t, exec.calls, 1)
}

func TestSyncPlanner_StepTransitions(t *testing.T) {
	p, _ := newTestPlanner(t, &recordingExecutor{fn: failBulk}, "a.txt", "b/")
	require.Equal(t, plannerNotStarted, p.state)
	p.step()
	require.Equal(t, plannerBulkAttempted, p.state)
	p.step()
	require.Equal(t, plannerItemizedInProgress, p.state)
	p.step()
	require.Equal(t, plannerItemizedInProgress, p.state)
	p.step()
	require.Equal(t, plannerDone, p.state)
	require.Equal(t, "Done", p.state.String())
}

// TestSyncPlanner_BulkFailure_OneOutcomePerItem verifies that with manifest
// ["a.txt","b/"] and only a.txt present, the bulk outcome is followed by
// exactly one outcome for a.txt.
func TestSyncPlanner_BulkFailure_OneOutcomePerItem(t *testing.T) {
	exec := &recordingExecutor{fn: failBulk}
	p, recorded := newTestPlanner(t, exec, "a.txt", "b/")
	require.NoError(t, p.run())
	require.True(t, p.itemized)
	require.Len(t, *recorded, 2)
	require.Equal(t, phaseBulk, (*recorded)[0].Phase)
	require.False(t, (*recorded)[0].Succeeded())
	require.Equal(t, phaseItem, (*recorded)[1].Phase)
	require.Equal(t, "a.txt", (*recorded)[1].Item.Path)
	require.Equal(t, "scp -o StrictHostKeyChecking=no -- a.txt u@h:/dst/", (*recorded)[1].Command)
}

func TestSyncPlanner_ItemizedInManifestOrderSkippingExcluded(t *testing.T) {
	exec := &recordingExecutor{fn: failBulk}
	p, recorded := newTestPlanner(t, exec, "lib", "node_modules", "a.txt")
	require.NoError(t, p.run())
	require.Len(t, *recorded, 3)
	require.Equal(t, "lib", (*recorded)[1].Item.Path)
	require.Equal(t, kindDirectory, (*recorded)[1].Item.Kind)
	require.Equal(t, "a.txt", (*recorded)[2].Item.Path)
	require.Equal(t, "/proj", exec.calls[1].Dir)
}

// TestSyncPlanner_AllItemsFail_StillDone verifies that failures never abort
// the itemized pass.
func TestSyncPlanner_AllItemsFail_StillDone(t *testing.T) {
	exec := &recordingExecutor{fn: func(command) transferOutcome {
		return transferOutcome{ExitCode: 1, Stderr: "Permission denied"}
	}}
	p, recorded := newTestPlanner(t, exec, "a.txt", "lib/")
	require.NoError(t, p.run())
	require.Equal(t, plannerDone, p.state)
	require.Len(t, *recorded, 3)
	for _, o := range (*recorded)[1:] {
		require.False(t, o.Succeeded())
		require.Equal(t, "Permission denied", o.errorText())
	}
}

func TestSyncPlanner_PruneOnlyOnBulk(t *testing.T) {
	exec := &recordingExecutor{fn: failBulk}
	p, _ := newTestPlanner(t, exec, "a.txt")
	p.prune = true
	require.NoError(t, p.run())
	require.Contains(t, exec.calls[0].line(), "--delete")
	require.NotContains(t, exec.calls[1].line(), "--delete")
}

func TestSyncPlanner_ResolveErrorEndsRun(t *testing.T) {
	exec := &recordingExecutor{fn: failBulk}
	p, recorded := newTestPlanner(t, exec, "a.txt")
	p.paths = newPathSet(errFs{}, nil)
	err := p.run()
	require.Error(t, err)
	require.Equal(t, plannerDone, p.state)
	require.Len(t, *recorded, 1)
}
