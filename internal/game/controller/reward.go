package controller

import (
	"github.com/numcog/gridgames/internal/common"
	"github.com/numcog/gridgames/internal/game/geometry"
)

// calculateReward is the single dispatch point for variant reward behavior.
// It is evaluated exactly once per episode, on the button press.
func (c *Controller) calculateReward() float64 {
	switch c.cfg.Variant {
	case EvenLineMatch, UnevenLineMatch:
		return c.lineMatchReward()
	case ClusterMatch, OrthogonalLineMatch, BriefPresentation:
		return c.clusterMatchReward()
	case ReverseClusterMatch:
		return c.reverseClusterReward()
	case ClusterClusterMatch:
		return c.clusterClusterReward()
	case NutsInCan, VisNuts:
		return c.countOnlyReward()
	default:
		return 0
	}
}

// lineMatchReward scores a line-match episode: items must form a single row
// whose columns equal the target columns. Non-harsh grading awards the
// column intersection minus stray item columns minus any item surplus or
// deficit.
func (c *Controller) lineMatchReward() float64 {
	targs, items := c.reg.Targs(), c.reg.Items()
	if c.cfg.Harsh && len(targs) != len(items) {
		return -1
	}
	itemRows, itemCols := geometry.RowsAndCols(items)
	_, targCols := geometry.RowsAndCols(targs)
	if len(itemRows) > 1 {
		return -1
	}
	if c.cfg.Harsh {
		if geometry.SetsEqual(targCols, itemCols) {
			return 1
		}
		return -1
	}
	inter := geometry.Intersection(targCols, itemCols)
	rew := inter
	rew -= len(itemCols) - inter
	rew -= common.Max(0, common.Abs(len(items)-len(targs)))
	return float64(rew)
}

// clusterMatchReward scores cluster-style episodes: the right number of
// items, all lying in a single row below the top playable row. The aligned
// count is the population of the fullest row at or below row 1.
func (c *Controller) clusterMatchReward() float64 {
	nTargs := c.reg.NTargs()
	nItems := c.reg.NItems()
	_, nAligned := geometry.MaxRow(c.reg.Items(), 1)
	if c.cfg.Harsh {
		if nItems != nTargs {
			return -1
		}
		if nAligned == nTargs {
			return 1
		}
		return 0
	}
	rew := float64(nTargs-common.Abs(nItems-nTargs)) / float64(nTargs)
	rew -= float64(common.Abs(nAligned-nItems)) / float64(nTargs)
	return rew
}

// reverseClusterReward scores the role-reversed game: match the count but do
// NOT reproduce the target columns. Full alignment only pays when a single
// target makes it unavoidable.
func (c *Controller) reverseClusterReward() float64 {
	targs, items := c.reg.Targs(), c.reg.Items()
	nTargs := len(targs)
	nItems := len(items)
	nAligned := len(geometry.AlignedItems(items, targs, 0))
	if nAligned == nTargs {
		if nAligned == 1 {
			return 1
		}
		return 0
	}
	if c.cfg.Harsh {
		if nTargs != nItems {
			return -1
		}
		return 1
	}
	return float64(nTargs-common.Abs(nItems-nTargs)) / float64(nTargs)
}

// clusterClusterReward scores the unstructured count-matching game.
func (c *Controller) clusterClusterReward() float64 {
	nTargs := c.reg.NTargs()
	nItems := c.reg.NItems()
	if c.cfg.Harsh {
		if nTargs == nItems {
			return 1
		}
		return -1
	}
	return float64(nTargs-common.Abs(nItems-nTargs)) / float64(nTargs)
}

// countOnlyReward scores the nuts variants: the count is all that matters,
// with no distinct non-harsh form.
func (c *Controller) countOnlyReward() float64 {
	if c.reg.NItems() == c.reg.NTargs() {
		return 1
	}
	return -1
}
