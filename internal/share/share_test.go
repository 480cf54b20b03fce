package share

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCancelled = errors.New("share cancelled")

func TestShare_NativeTier(t *testing.T) {
	native := &FakeNative{}
	clipboard := &FakeClipboard{}
	caps := Capabilities{Native: native, Clipboard: clipboard}

	result := caps.Share(context.Background(), Data{
		Title: "Dev on DevConnect",
		URL:   "https://devconnect.local/post/p1",
	})

	assert.True(t, result.Success)
	assert.Equal(t, MethodNative, result.Method)
	require.Len(t, native.Shared, 1)
	assert.Empty(t, clipboard.Written)
}

func TestShare_ClipboardTierOnNativeCancel(t *testing.T) {
	clipboard := &FakeClipboard{}
	caps := Capabilities{
		Native:    &FakeNative{Err: errCancelled},
		Clipboard: clipboard,
	}

	result := caps.Share(context.Background(), Data{URL: "https://devconnect.local/post/p1"})

	assert.True(t, result.Success)
	assert.Equal(t, MethodClipboard, result.Method)
	require.Len(t, clipboard.Written, 1)
	assert.Equal(t, "https://devconnect.local/post/p1", clipboard.Written[0])
}

func TestShare_ClipboardTierWhenNativeAbsent(t *testing.T) {
	caps := Capabilities{Clipboard: &FakeClipboard{}}

	result := caps.Share(context.Background(), Data{URL: "https://devconnect.local/post/p1"})

	assert.True(t, result.Success)
	assert.Equal(t, MethodClipboard, result.Method)
}

func TestShare_ManualTierWhenEverythingFails(t *testing.T) {
	caps := Capabilities{
		Native:    &FakeNative{Err: errCancelled},
		Clipboard: &FakeClipboard{Err: errors.New("clipboard permission denied")},
	}

	result := caps.Share(context.Background(), Data{URL: "https://devconnect.local/post/p1"})

	assert.False(t, result.Success)
	assert.Equal(t, MethodManual, result.Method)
	assert.Equal(t, "https://devconnect.local/post/p1", result.URL)
	assert.NotEmpty(t, result.Message)
}

func TestShare_NoCapabilitiesAtAll(t *testing.T) {
	result := Capabilities{}.Share(context.Background(), Data{URL: "u"})

	assert.False(t, result.Success)
	assert.Equal(t, MethodManual, result.Method)
	assert.Equal(t, "u", result.URL)
}
