package recommend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableComplete(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	for _, severity := range []string{"None", "Low", "Medium", "High"} {
		b, err := table.ForSeverity(severity)
		require.NoError(t, err, severity)
		assert.NotEmpty(t, b.Diet, severity)
		assert.NotEmpty(t, b.Exercise, severity)
		assert.NotEmpty(t, b.Lifestyle, severity)
	}

	for _, stage := range []string{"Pre-Menopause", "Peri-Menopause", "Post-Menopause"} {
		b, err := table.ForStage(stage)
		require.NoError(t, err, stage)
		assert.NotEmpty(t, b.Diet, stage)
	}
}

func TestDoctorReferralFlags(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	for severity, want := range map[string]bool{
		"None": false, "Low": false, "Medium": true, "High": true,
	} {
		b, err := table.ForSeverity(severity)
		require.NoError(t, err)
		assert.Equal(t, want, b.NeedsDoctor, severity)
	}

	for stage, want := range map[string]bool{
		"Pre-Menopause": false, "Peri-Menopause": true, "Post-Menopause": true,
	} {
		b, err := table.ForStage(stage)
		require.NoError(t, err)
		assert.Equal(t, want, b.NeedsDoctor, stage)
	}
}

func TestForSeverityUnknownKey(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	_, err = table.ForSeverity("Critical")
	require.Error(t, err)
}

func TestFromFileOverride(t *testing.T) {
	defaultTable, err := Default()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, defaultTables, 0o644))

	fileTable, err := FromFile(path)
	require.NoError(t, err)

	if diff := cmp.Diff(defaultTable, fileTable); diff != "" {
		t.Fatalf("file round-trip differs (-default +file):\n%s", diff)
	}
}

func TestFromFileMissingStage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	content := `
pcos:
  "None": {diet: [a], exercise: [b], lifestyle: [c], needsDoctor: false}
  "Low": {diet: [a], exercise: [b], lifestyle: [c], needsDoctor: false}
  "Medium": {diet: [a], exercise: [b], lifestyle: [c], needsDoctor: true}
  "High": {diet: [a], exercise: [b], lifestyle: [c], needsDoctor: true}
menopause:
  "Pre-Menopause": {diet: [a], exercise: [b], lifestyle: [c], needsDoctor: false}
  "Peri-Menopause": {diet: [a], exercise: [b], lifestyle: [c], needsDoctor: true}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := FromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Post-Menopause")
}

func TestFromFileAbsent(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
