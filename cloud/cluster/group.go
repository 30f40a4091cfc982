package cluster

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// GroupType is the role an instance group plays in the cluster.
type GroupType string

const (
	GroupTypeMaster GroupType = "MASTER"
	GroupTypeCore   GroupType = "CORE"
	GroupTypeTask   GroupType = "TASK"
)

// OnDemandPrice is the bid a spot group carries when it is capped at the on-demand price.
const OnDemandPrice = "OnDemandPrice"

// InstanceGroup is a snapshot of one instance group as reported by the cluster API.
// Snapshots are fetched fresh for every decision and never cached.
type InstanceGroup struct {
	ID             string
	Name           string
	InstanceType   string
	Type           GroupType
	BidPrice       string // Empty unless the group is spot priced.
	RequestedCount int64
	RunningCount   int64
}

func (g InstanceGroup) String() string {
	return fmt.Sprintf("{id:%s, name:%s, type:%s, instanceType:%s, bid:%q, requested:%d, running:%d}",
		g.ID, g.Name, g.Type, g.InstanceType, g.BidPrice, g.RequestedCount, g.RunningCount)
}

// Scalable reports whether the group is a spot priced TASK group.
func (g InstanceGroup) Scalable() bool {
	return g.Type == GroupTypeTask && g.BidPrice != ""
}

// Converged is false while a previous resize of this group is still being applied.
func (g InstanceGroup) Converged() bool {
	return g.RequestedCount == g.RunningCount
}

// Bid returns the numeric rank of the group's bid price.
// OnDemandPrice outranks every numeric bid.
func (g InstanceGroup) Bid() (float64, bool) {
	if g.BidPrice == OnDemandPrice {
		return math.Inf(1), true
	}
	p, err := strconv.ParseFloat(g.BidPrice, 64)
	if err != nil || math.IsNaN(p) {
		return 0, false
	}
	return p, true
}

type rankedGroup struct {
	InstanceGroup
	bid float64
}

type byBidDesc []rankedGroup

func (b byBidDesc) Len() int           { return len(b) }
func (b byBidDesc) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
func (b byBidDesc) Less(i, j int) bool { return b[i].bid > b[j].bid }

// rankByBid orders groups by descending bid price. Groups with equal bids keep their API order.
// Groups whose bid can't be parsed are returned separately since they can't be ranked.
func rankByBid(groups []InstanceGroup) (ranked []InstanceGroup, unranked []InstanceGroup) {
	rgs := make([]rankedGroup, 0, len(groups))
	for _, g := range groups {
		bid, ok := g.Bid()
		if !ok {
			unranked = append(unranked, g)
			continue
		}
		rgs = append(rgs, rankedGroup{g, bid})
	}
	sort.Stable(byBidDesc(rgs))
	for _, rg := range rgs {
		ranked = append(ranked, rg.InstanceGroup)
	}
	return ranked, unranked
}
