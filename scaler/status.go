package scaler

import (
	"context"

	"github.com/twitter/taskscaler/cloud/cluster"
)

// Status is a read-only snapshot of everything a decision would look at.
// Predicate errors are reported in the snapshot instead of failing it.
type Status struct {
	ClusterID            string                  `json:"clusterId"`
	Groups               []cluster.InstanceGroup `json:"groups"`
	ScalingInProgress    bool                    `json:"scalingInProgress"`
	ShouldScaleUp        bool                    `json:"shouldScaleUp"`
	ScaleUpError         string                  `json:"scaleUpError,omitempty"`
	ShouldScaleDown      bool                    `json:"shouldScaleDown"`
	ScaleDownError       string                  `json:"scaleDownError,omitempty"`
	InOfficeHours        bool                    `json:"inOfficeHours"`
	AfterShutdownTime    bool                    `json:"afterShutdownTime"`
	TerminationProtected bool                    `json:"terminationProtected"`
	ParentStack          string                  `json:"parentStack,omitempty"`
}

// Status gathers the snapshot without resizing or deleting anything.
// Failing to read the groups or the protection flag fails the call.
func (s *Scaler) Status(ctx context.Context) (*Status, error) {
	st := &Status{ClusterID: s.clusterID, ParentStack: s.cfg.ParentStack}

	groups, err := s.controller.ScalableGroups(ctx)
	if err != nil {
		return nil, err
	}
	st.Groups = groups
	for _, g := range groups {
		if !g.Converged() {
			st.ScalingInProgress = true
		}
	}

	if st.ShouldScaleUp, err = s.policy.ShouldScaleUp(ctx); err != nil {
		st.ScaleUpError = err.Error()
	}
	if st.ShouldScaleDown, err = s.policy.ShouldScaleDown(ctx, s.cfg.Threshold); err != nil {
		st.ScaleDownError = err.Error()
	}
	st.InOfficeHours = s.policy.InOfficeHours()
	st.AfterShutdownTime = s.policy.IsAfterShutdownTime()

	if st.TerminationProtected, err = s.controller.IsTerminationProtected(ctx); err != nil {
		return nil, err
	}
	return st, nil
}
