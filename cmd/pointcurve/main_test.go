package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/itemforge/internal/game/pointcurve"
)

func TestPrintCurve(t *testing.T) {
	t.Parallel()

	curve := pointcurve.NewDefault()

	tests := []struct {
		name            string
		from, to, level int
		wantLines       int
		wantErr         bool
	}{
		{name: "whole table", from: 1, wantLines: pointcurve.DefaultMaxLevel + 1},
		{name: "range", from: 10, to: 12, wantLines: 4},
		{name: "single level", from: 1, level: 50, wantLines: 2},
		{name: "past max", from: 1, to: 301, wantErr: true},
		{name: "inverted", from: 20, to: 10, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := printCurve(&buf, curve, tt.from, tt.to, tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLines, bytes.Count(buf.Bytes(), []byte("\n")))
		})
	}
}

func TestPrintCurve_Header(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, printCurve(&buf, pointcurve.NewDefault(), 1, 1, 0))
	assert.Equal(t, "# steepness=7 growth=1.021 baseline=0\nLevel 1: 7\n", buf.String())
}
