package ledger

import "context"

// UpdateRewardRate replaces the per-tick reward rate. Only the admin address
// may call it. The new rate applies to every claim settled after the update,
// including assets whose unbonding window closed under the old rate.
func (l *Ledger) UpdateRewardRate(ctx context.Context, callerAddress string, newRate uint64) (*RewardRateUpdate, error) {
	if callerAddress != l.adminAddress {
		return nil, ErrNotAdmin
	}
	if newRate == 0 {
		return nil, ErrInvalidRewardRate
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	oldRate := l.rewardRatePerTick
	if err := l.dbClient.UpdateRewardRate(ctx, oldRate, newRate); err != nil {
		return nil, err
	}
	l.rewardRatePerTick = newRate

	return &RewardRateUpdate{
		OldRate: oldRate,
		NewRate: newRate,
	}, nil
}

// SetPaused toggles the staking intake gate. Pausing only blocks stake, the
// unstake, withdraw and claim paths stay open so nobody's assets are locked
// in by the pause.
func (l *Ledger) SetPaused(ctx context.Context, callerAddress string, paused bool) error {
	if callerAddress != l.adminAddress {
		return ErrNotAdmin
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.paused == paused {
		return nil
	}
	if err := l.dbClient.SetPaused(ctx, paused); err != nil {
		return err
	}
	l.paused = paused
	return nil
}
