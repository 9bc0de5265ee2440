package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_NoColorFlag(t *testing.T) {
	info := Detect(true)
	assert.False(t, info.ColorEnabled)
}

func TestDetect_NOCOLOREnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, Detect(false).ColorEnabled)
}

func TestDetect_ProgressDisabledInCI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.False(t, Detect(false).ProgressEnabled)
}

func TestDetect_NonTTY(t *testing.T) {
	info := Detect(false)
	if info.IsTerminal {
		t.Skip("test stdout appears to be a TTY, skipping non-TTY test")
	}
	assert.False(t, info.ColorEnabled)
}

func TestIsDumb(t *testing.T) {
	t.Setenv("TERM", "dumb")
	assert.True(t, IsDumb())

	t.Setenv("TERM", "xterm-256color")
	assert.False(t, IsDumb())
}

func TestIsCI(t *testing.T) {
	for _, v := range []string{"CI", "GITHUB_ACTIONS", "JENKINS_URL", "GITLAB_CI", "CIRCLECI", "TRAVIS"} {
		t.Setenv(v, "")
	}
	assert.False(t, IsCI())

	t.Setenv("GITHUB_ACTIONS", "true")
	assert.True(t, IsCI())
}
