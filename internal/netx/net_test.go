package netx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePIDs(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []int
	}{
		{"empty", "", nil},
		{"single", "4312\n", []int{4312}},
		{"multiple", "4312\n991\n", []int{4312, 991}},
		{"garbage lines skipped", "4312\nnot-a-pid\n-5\n0\n", []int{4312}},
		{"trailing whitespace", "  4312  \n", []int{4312}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePIDs([]byte(tt.out)))
		})
	}
}

func TestListenerPIDs_UsesSeam(t *testing.T) {
	orig := lsofOutput
	lsofOutput = func(ctx context.Context, port int) ([]byte, error) {
		assert.Equal(t, 3000, port)
		return []byte("123\n456\n"), nil
	}
	defer func() { lsofOutput = orig }()

	pids, err := ListenerPIDs(context.Background(), 3000)
	require.NoError(t, err)
	assert.Equal(t, []int{123, 456}, pids)
}

func TestListenerPIDs_PropagatesError(t *testing.T) {
	orig := lsofOutput
	wantErr := errors.New("boom")
	lsofOutput = func(ctx context.Context, port int) ([]byte, error) { return nil, wantErr }
	defer func() { lsofOutput = orig }()

	_, err := ListenerPIDs(context.Background(), 3000)
	require.ErrorIs(t, err, wantErr)
}
