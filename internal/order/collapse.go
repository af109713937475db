package order

import (
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/fulfillment-audit/internal/types"
)

// UpgradeRule describes a seat upgrade that makes the earlier purchase redundant.
// It fires for a buyer/course pair whose modes are exactly {Superseded, Upgrade}
// with a single Superseded order; that order is dropped.
type UpgradeRule struct {
	Name       string
	Superseded types.Mode
	Upgrade    types.Mode
}

var HonorToVerified = UpgradeRule{
	Name:       "honor-to-verified",
	Superseded: types.HonorMode,
	Upgrade:    types.VerifiedMode,
}

// TODO: add a credit upgrade rule once product confirms which mode a credit purchase supersedes.
var DefaultUpgradeRules = []UpgradeRule{HonorToVerified}

// superseded returns the index within group of the order the rule drops, or -1.
// Groups with several Superseded orders are left alone so a second pass finds nothing to drop.
func (r UpgradeRule) superseded(group []types.Order) int {
	if len(group) < 2 || r.Superseded == r.Upgrade {
		return -1
	}
	found := -1
	for i, o := range group {
		switch o.Mode {
		case r.Superseded:
			if found >= 0 {
				return -1
			}
			found = i
		case r.Upgrade:
		default:
			return -1
		}
	}
	return found
}

// Collapse drops orders superseded by a later upgrade for the same buyer and course.
// The input slice is left untouched; kept orders retain their relative order.
func Collapse(orders []types.Order, rules []UpgradeRule) (kept []types.Order, collapsed []types.Order) {

	groups := make(map[types.GroupKey][]int)
	var keys []types.GroupKey
	for i, o := range orders {
		key := o.GroupKey()
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], i)
	}

	drop := make(map[int]bool)
	for _, key := range keys {
		idx := groups[key]
		if len(idx) < 2 {
			continue
		}
		group := make([]types.Order, len(idx))
		for i, j := range idx {
			group[i] = orders[j]
		}
		for _, rule := range rules {
			i := rule.superseded(group)
			if i < 0 {
				continue
			}
			removed := idx[i]
			drop[removed] = true
			logger.WithFields(logger.Fields{
				"rule":     rule.Name,
				"username": key.Username,
				"course":   key.CourseID,
				"order":    orders[removed].Number,
			}).Infof("User [%s] recently upgraded for course [%s]. %s order [%s] will be ignored.",
				key.Username, key.CourseID, orders[removed].Mode, orders[removed].Number)
			break
		}
	}

	kept = make([]types.Order, 0, len(orders)-len(drop))
	for i, o := range orders {
		if drop[i] {
			collapsed = append(collapsed, o)
			continue
		}
		kept = append(kept, o)
	}
	return kept, collapsed
}
