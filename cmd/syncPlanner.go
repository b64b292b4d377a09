package cmd

import (
	log "github.com/sirupsen/logrus"
)

// plannerState is the position of a syncPlanner in the transfer protocol.
type plannerState int

const (
	plannerNotStarted plannerState = iota
	plannerBulkAttempted
	plannerItemizedInProgress
	plannerDone
)

func (s plannerState) String() string {
	switch s {
	case plannerNotStarted:
		return "NotStarted"
	case plannerBulkAttempted:
		return "BulkAttempted"
	case plannerItemizedInProgress:
		return "ItemizedInProgress"
	case plannerDone:
		return "Done"
	}
	return "Unknown"
}

// syncPlanner decides between one bulk mirror and the itemized fallback.
// Every attempted unit of work is handed to record in execution order: the
// bulk outcome first, then one outcome per resolved item.
type syncPlanner struct {
	exec     executor
	paths    *pathSet
	target   transferTarget
	opts     transportOptions
	root     string
	manifest []string
	exclude  exclusionPolicy
	prune    bool
	record   func(transferOutcome)

	state    plannerState
	bulk     transferOutcome
	items    []transferItem
	next     int
	itemized bool
	err      error
}

// step performs exactly one state transition.
func (p *syncPlanner) step() {
	switch p.state {
	case plannerNotStarted:
		c := mirrorCommand(p.target, p.opts, p.root, p.exclude, p.prune)
		p.bulk = p.exec.Execute(c, p.target)
		p.bulk.Phase = phaseBulk
		p.record(p.bulk)
		p.state = plannerBulkAttempted

	case plannerBulkAttempted:
		if p.bulk.Succeeded() {
			p.state = plannerDone
			return
		}
		log.WithField("exit_code", p.bulk.ExitCode).Warn("Bulk mirror failed; falling back to itemized copy")
		items, err := p.paths.resolve(p.manifest, p.root)
		if err != nil {
			p.err = err
			p.state = plannerDone
			return
		}
		if p.prune {
			log.Warn("Itemized copy does not prune remote files removed locally")
		}
		p.items = items
		p.itemized = true
		p.state = plannerItemizedInProgress

	case plannerItemizedInProgress:
		if p.next >= len(p.items) {
			p.state = plannerDone
			return
		}
		item := p.items[p.next]
		p.next++
		o := p.exec.Execute(copyCommand(p.target, p.opts, p.root, item), p.target)
		o.Phase = phaseItem
		o.Item = &item
		p.record(o)
	}
}

// run steps until Done and returns the filesystem error, if any, that cut
// the itemized pass short.
func (p *syncPlanner) run() error {
	for p.state != plannerDone {
		p.step()
	}
	return p.err
}
