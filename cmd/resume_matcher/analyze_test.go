package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestAnalyzeCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing --resume flag",
			args:        []string{"analyze", "--jd-text", "Python engineer"},
			errorString: "--resume is required",
		},
		{
			name:        "Missing job description source",
			args:        []string{"analyze", "--resume", "resume.txt"},
			errorString: "one of --jd, --jd-text, or --jd-url",
		},
		{
			name:        "Mutually exclusive jd sources",
			args:        []string{"analyze", "--resume", "resume.txt", "--jd-text", "x", "--jd-url", "https://example.com/job"},
			errorString: "mutually exclusive",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestAnalyzeCommand_JSONOutput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	resumePath := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("Skills\nPython, SQL\n\nExperience\n3 years building pipelines"), 0644))
	jdPath := filepath.Join(dir, "jd.txt")
	require.NoError(t, os.WriteFile(jdPath, []byte("Python engineer with SQL and Kubernetes"), 0644))

	cmd := exec.Command(binaryPath, "analyze", "--resume", resumePath, "--jd", jdPath, "--json")
	cmd.Env = append(os.Environ(), "GEMINI_API_KEY=") // force TF-IDF fallback
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	var report types.AnalysisReport
	require.NoError(t, json.Unmarshal(output, &report))
	assert.Equal(t, "tfidf", report.Scores.Method)
	assert.Contains(t, report.Gaps.Missing, "kubernetes")
}

func TestAnalyzeCommand_UnsupportedResumeFormat(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	resumePath := filepath.Join(dir, "resume.odt")
	require.NoError(t, os.WriteFile(resumePath, []byte("text"), 0644))

	cmd := exec.Command(binaryPath, "analyze", "--resume", resumePath, "--jd-text", "Python")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unsupported file type")
}
