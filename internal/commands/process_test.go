package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleExport = "Store 12 - Main Branch\n" +
	"Daily Sales Report\n" +
	"Date\tPOS Name\tCashier Name\tTransaction No\tOR No\tDishes\tDish Quantities\n" +
	"2025-06-01 09:15:00\tPOS-1\tALICE\t1001\t2001\tBurger W/ Cheese\t1\n" +
	"\t\t\t\t2001\tFries (2) PCS\t2\n" +
	"2025-06-01 09:20:00\tPOS-1\tALICE\t1002\t2002\tFish & Chips\t1\n"

// run executes `dailyreport process` with the given args and returns the
// combined console output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProcess_WritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day.xls"), []byte(sampleExport), 0o644))

	out, err := run(t, "", "process", dir, "--config", filepath.Join(dir, "none.yaml"))
	require.NoError(t, err)

	path := filepath.Join(dir, "Daily_Report.xlsx")
	assert.Contains(t, out, "[INFO] Report saved to: "+path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"DailyReport", "Transactions", "Dishes"}, f.GetSheetList())

	rows, err := f.GetRows("Dishes")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "BURGER WITH CHEESE", rows[1][6])

	rows, err = f.GetRows("Transactions")
	require.NoError(t, err)
	assert.Len(t, rows, 3) // header + two distinct OR numbers
}

func TestProcess_InvalidFolder(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	out, err := run(t, "", "process", missing)
	require.NoError(t, err)
	assert.Contains(t, out, "[ERROR] Invalid folder path: "+missing)
	_, statErr := os.Stat(filepath.Join(missing, "Daily_Report.xlsx"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestProcess_FolderIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	out, err := run(t, "", "process", file)
	require.NoError(t, err)
	assert.Contains(t, out, "[ERROR] Invalid folder path:")
}

func TestProcess_EmptyFolderWarns(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "", "process", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "[WARNING] No valid .xls files found or all files failed to load.")
	_, statErr := os.Stat(filepath.Join(dir, "Daily_Report.xlsx"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestProcess_CorruptFileLoggedAndSkipped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.xls"), []byte{0xff, 0xff}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.xls"), []byte(sampleExport), 0o644))

	out, err := run(t, "", "process", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "[ERROR] Could not read 'bad.xls':")
	assert.Contains(t, out, "[INFO] Report saved to:")
}

func TestProcess_PromptsWhenNoArg(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day.xls"), []byte(sampleExport), 0o644))

	out, err := run(t, dir+"\n", "process")
	require.NoError(t, err)
	assert.Contains(t, out, "Input the folder path: ")
	assert.Contains(t, out, "[INFO] Report saved to:")
}

func TestProcess_Banner(t *testing.T) {
	out, err := run(t, "", "process", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Daily Report Processor")
	assert.Contains(t, out, "Author: Jamil Mendez")
	assert.Contains(t, out, "License: MIT")
}

func TestProcess_CustomConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day.xls"), []byte(sampleExport), 0o644))

	cfgPath := filepath.Join(dir, "run.yaml")
	cfgBody := "output:\n  file: Shift_Report.xlsx\n  sheets:\n    report: Raw\n    transactions: Summary\n    dishes: Items\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgBody), 0o644))

	out, err := run(t, "", "process", dir, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Shift_Report.xlsx")

	f, err := excelize.OpenFile(filepath.Join(dir, "Shift_Report.xlsx"))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Raw", "Summary", "Items"}, f.GetSheetList())
}
