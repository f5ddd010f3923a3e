package controller

import (
	"github.com/numcog/gridgames/internal/game/events"
	"github.com/numcog/gridgames/internal/game/geometry"
	"github.com/numcog/gridgames/internal/game/object"
	"github.com/numcog/gridgames/internal/game/registry"
)

// Step advances the episode by one turn. During the counting phase (the
// first n_targs+1 steps) grab input is forcibly suppressed and the reported
// item count is synthesized from the step counter, so the agent can count
// targets without acting prematurely. The episode-ending reward is computed
// only on a button press; overflowing the item ceiling costs a flat -1.
func (c *Controller) Step(m registry.Move, grab bool) (canvas []float64, reward float64, done bool, info Info) {
	c.nSteps++
	info = c.buildInfo()

	nTargs := c.reg.NTargs()
	if c.cfg.Variant.flashesTargets() {
		c.flashNext()
	} else {
		if c.nSteps > nTargs && c.animating {
			c.reg.MakeSignal()
			if c.cfg.Variant == BriefPresentation {
				c.reg.HideTargs()
			}
			c.animating = false
			if c.bus != nil {
				c.bus.Publish(events.NewSignalRaisedEvent(c.episodeID, c.nSteps))
			}
		}
		if c.nSteps <= nTargs+1 {
			grab = false
		}
	}
	if c.nSteps <= nTargs+1 {
		info.NItems = c.nSteps - 1
	}

	event := c.reg.Step(m, grab)

	switch event {
	case registry.EventButtonPress:
		reward = c.calculateReward()
		done = true
		if c.bus != nil {
			c.bus.Publish(events.NewButtonPressedEvent(c.episodeID, c.nSteps, c.reg.NItems(), nTargs))
			c.bus.Publish(events.NewEpisodeEndedEvent(c.episodeID, reward, c.nSteps, false))
		}
	case registry.EventFull:
		reward = -1
		done = true
		if c.bus != nil {
			c.bus.Publish(events.NewEpisodeEndedEvent(c.episodeID, reward, c.nSteps, true))
		}
	}
	return c.grid.Pixels(), reward, done, info
}

func (c *Controller) buildInfo() Info {
	return Info{
		IsHarsh:           c.cfg.Harsh,
		NTargs:            c.reg.NTargs(),
		NItems:            c.reg.NItems(),
		NAligned:          len(geometry.AlignedItems(c.reg.Items(), c.reg.Targs(), 0)),
		DisplayingTargets: c.reg.DisplayTargs(),
		IsAnimating:       c.animating,
	}
}

// flashNext advances the one-target-per-step flashing animation of the nuts
// variants. NutsInCan re-hides each target after its flash; VisNuts leaves
// flashed targets visible.
func (c *Controller) flashNext() {
	switch {
	case c.currentTarg == nil && len(c.pendingTargs) > 0:
		c.currentTarg = c.popPending()
		c.currentTarg.Color = object.ColorTarg
	case len(c.pendingTargs) > 0:
		if c.cfg.Variant == NutsInCan {
			c.currentTarg.Color = object.ColorDefault
		}
		c.flashedTargs = append(c.flashedTargs, c.currentTarg)
		c.currentTarg = c.popPending()
		c.currentTarg.Color = object.ColorTarg
	case c.animating:
		c.endFlashing()
	}
}

func (c *Controller) popPending() *object.Object {
	t := c.pendingTargs[len(c.pendingTargs)-1]
	c.pendingTargs = c.pendingTargs[:len(c.pendingTargs)-1]
	return t
}

// endFlashing raises the signal that tells the agent the flashing stage is
// over. NutsInCan hides the targets for the rest of the episode; VisNuts
// restores every flashed target to full visibility.
func (c *Controller) endFlashing() {
	c.reg.MakeSignal()
	for _, t := range c.flashedTargs {
		t.Color = object.ColorTarg
	}
	if c.cfg.Variant == NutsInCan {
		c.reg.HideTargs()
	}
	c.animating = false
	if c.bus != nil {
		c.bus.Publish(events.NewSignalRaisedEvent(c.episodeID, c.nSteps))
	}
}
