package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

// Registration happens once for the whole test binary, MustRegister panics
// on a second call.
func TestGaugeRecorders(t *testing.T) {
	registerMetrics()

	RecordCurrentTick(42)
	require.Equal(t, float64(42), testutil.ToFloat64(currentTickGauge))

	RecordAssetStageCount("staked", 7)
	require.Equal(t, float64(7), testutil.ToFloat64(assetsByStageGauge.WithLabelValues("staked")))

	RecordTotalStakers(3)
	require.Equal(t, float64(3), testutil.ToFloat64(totalStakersGauge))

	RecordRewardsPaid(150)
	require.Equal(t, float64(150), testutil.ToFloat64(rewardsPaidGauge))
}
