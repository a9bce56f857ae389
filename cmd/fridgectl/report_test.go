package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/fridgekeeper/pkg/logger"
	"github.com/ghuser/fridgekeeper/services/fridge/domain/models"
)

func discardLogger() logger.Logger {
	return logger.NewWithWriter(io.Discard, "error")
}

func TestRenderTable(t *testing.T) {
	rows := []models.TypeFill{{ItemType: 1, FillFactor: 0.75}, {ItemType: 12, FillFactor: 0}}

	t.Run("without labels", func(t *testing.T) {
		want := "ITEM TYPE  AVG FILL\n" +
			"1          0.75\n" +
			"12         0.00\n"
		assert.Equal(t, want, renderTable(rows, nil))
	})

	t.Run("wide labels keep columns aligned", func(t *testing.T) {
		labels := map[int64]string{1: "牛乳", 12: "eggs"}
		want := "ITEM TYPE  LABEL  AVG FILL\n" +
			"1          牛乳   0.75\n" +
			"12         eggs   0.00\n"
		assert.Equal(t, want, renderTable(rows, labels))
	})

	t.Run("header only when empty", func(t *testing.T) {
		assert.Equal(t, "ITEM TYPE  AVG FILL\n", renderTable(nil, nil))
	})
}

func TestRunReport_Fixture(t *testing.T) {
	sc, err := LoadScenario("testdata/scenario.yaml")
	require.NoError(t, err)

	tests := []struct {
		threshold float64
		types     []string
	}{
		{0.75, []string{"1", "2", "3"}},
		{0.25, []string{"2", "3"}},
		{0.24, []string{"3"}},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		err := runReport(context.Background(), &out, discardLogger(), sc, tt.threshold, &reportOptions{})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		// header, one row per type, blank line, summary
		require.Len(t, lines, len(tt.types)+3, out.String())
		for i, want := range tt.types {
			assert.Equal(t, want, strings.Fields(lines[i+1])[0])
		}
		assert.Contains(t, lines[len(lines)-1], "item type(s) at or below")
	}
}

func TestRunReport_InvalidFill(t *testing.T) {
	sc, err := LoadScenario("testdata/invalid_fill.yaml")
	require.NoError(t, err)

	t.Run("fails by default", func(t *testing.T) {
		var out bytes.Buffer
		err := runReport(context.Background(), &out, discardLogger(), sc, 0.5, &reportOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "event 2")
	})

	t.Run("skip-invalid continues", func(t *testing.T) {
		var out bytes.Buffer
		err := runReport(context.Background(), &out, discardLogger(), sc, 0.5, &reportOptions{skipInvalid: true, dump: true})
		require.NoError(t, err)

		got := out.String()
		assert.Contains(t, got, "1 item type(s) at or below 0.5, 1 invalid event(s) skipped")
		assert.Contains(t, got, "0.40")
		assert.Contains(t, got, "itemUUID='a'")
		assert.NotContains(t, got, "itemUUID='c'")
	})
}

func TestRunReport_ThresholdOutOfRange(t *testing.T) {
	var out bytes.Buffer
	err := runReport(context.Background(), &out, discardLogger(), &Scenario{}, 1.5, &reportOptions{})
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestReportCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"report", "--file", "testdata/scenario.yaml", "--threshold", "0.25"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "ITEM TYPE  LABEL  AVG FILL")
	assert.Contains(t, out.String(), "2 item type(s) at or below 0.25")
}

func TestReportCmd_RequiresFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"report"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file")
}
