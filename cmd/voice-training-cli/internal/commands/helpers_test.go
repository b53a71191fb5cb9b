package commands

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/voice-training/voice-training-service/internal/pkg/testutil"
)

// writeTestConfig writes a config using a sqlite file and a local audio store under dir.
func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()

	content := fmt.Sprintf(`port: "8080"
database:
  type: sqlite
  dsn: %q
audio_connector:
  cloud_provider: local
  upload_dir: %q
transcription:
  provider: none
`, filepath.Join(dir, "voice.db"), filepath.Join(dir, "uploads"))

	return testutil.WriteTestFile(t, dir, "cli.yaml", []byte(content))
}

// execute runs the CLI with args and returns its stdout.
func execute(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", configPath}, args...))

	err := root.Execute()
	return out.String(), err
}
