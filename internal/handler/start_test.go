package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{
			name:     "valid video id",
			payload:  "vid_a1b2c3d4",
			expected: "vid_a1b2c3d4",
		},
		{
			name:     "surrounding whitespace",
			payload:  "  vid_a1b2c3d4\n",
			expected: "vid_a1b2c3d4",
		},
		{
			name:     "empty payload",
			payload:  "",
			expected: "",
		},
		{
			name:     "plain start without deep link",
			payload:  "hello",
			expected: "",
		},
		{
			name:     "wrong prefix",
			payload:  "video_a1b2c3d4",
			expected: "",
		},
		{
			name:     "prefix only",
			payload:  "vid_",
			expected: "vid_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractVideoID(tt.payload))
		})
	}
}
