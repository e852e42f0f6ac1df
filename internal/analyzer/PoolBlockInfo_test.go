package analyzer

import (
	"testing"

	"github.com/elys-network/aprcell/internal/types"
	"github.com/stretchr/testify/assert"
)

func height(h uint64) *uint64 { return &h }

func TestGetPoolBlockInfo(t *testing.T) {
	pool := types.Pool{StartBlock: 100, EndBlock: 200}

	tests := []struct {
		name    string
		current *uint64
		want    types.BlockInfo
	}{
		{
			name:    "before start",
			current: height(40),
			want: types.BlockInfo{
				ShouldShowBlockCountdown: true,
				BlocksUntilStart:         60,
				BlocksRemaining:          160,
				BlocksToDisplay:          60,
			},
		},
		{
			name:    "running",
			current: height(150),
			want: types.BlockInfo{
				ShouldShowBlockCountdown: true,
				BlocksRemaining:          50,
				HasPoolStarted:           true,
				BlocksToDisplay:          50,
			},
		},
		{
			name:    "past end",
			current: height(250),
			want:    types.BlockInfo{ShouldShowBlockCountdown: true},
		},
		{
			name:    "unknown height",
			current: nil,
			want:    types.BlockInfo{ShouldShowBlockCountdown: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPoolBlockInfo(pool, tt.current))
		})
	}
}

func TestGetPoolBlockInfo_NoCountdown(t *testing.T) {
	assert.False(t, GetPoolBlockInfo(types.Pool{StartBlock: 100}, height(1)).ShouldShowBlockCountdown)
	assert.False(t, GetPoolBlockInfo(types.Pool{StartBlock: 100, EndBlock: 200, IsFinished: true}, height(1)).ShouldShowBlockCountdown)
}
