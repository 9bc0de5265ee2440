package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeployError_MatchesKind(t *testing.T) {
	err := NewDeployError(ErrAssetAlreadyExists, "download %q already exists", "widget-1.0.jar")

	assert.True(t, errors.Is(err, ErrAssetAlreadyExists))
	assert.False(t, errors.Is(err, ErrUploadFailed))
	assert.Equal(t, `download "widget-1.0.jar" already exists`, err.Error())
}

func TestDeployError_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapDeployError(ErrListingFetchFailed, cause, "could not check existing downloads")

	assert.True(t, errors.Is(err, ErrListingFetchFailed))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "could not check existing downloads: connection refused", err.Error())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "plain error", err: errors.New("boom"), want: nil},
		{name: "deploy error", err: NewDeployError(ErrOfflineMode, "offline"), want: ErrOfflineMode},
		{
			name: "wrapped deploy error",
			err:  fmt.Errorf("deploy: %w", NewDeployError(ErrUploadFailed, "upload")),
			want: ErrUploadFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
