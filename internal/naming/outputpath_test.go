package naming

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		base   string
		stem   string
		ext    string
		hasExt bool
	}{
		{"a.mkv", "a", "mkv", true},
		{"show.s01e01.mkv", "show.s01e01", "mkv", true},
		{".hidden", ".hidden", "", false},
		{".hidden.mkv", ".hidden", "mkv", true},
		{"README", "README", "", false},
		{"trailing.", "trailing", "", true},
		{"..", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			stem, ext, hasExt := SplitName(tt.base)
			assert.Equal(t, tt.stem, stem)
			assert.Equal(t, tt.ext, ext)
			assert.Equal(t, tt.hasExt, hasExt)
		})
	}
}

func TestIsMerged(t *testing.T) {
	tests := []struct {
		base string
		want bool
	}{
		{"old_merged.mkv", true},
		{"old_merged.mp4", true},
		{"old_merged", true},
		{"ep01_merged.tar.gz", false},
		{"old_MERGED.mkv", false},
		{"old_merged_v2.mkv", false},
		{"merged.mkv", false},
		{"_merged.mkv", true},
		{"a.mkv", false},
	}
	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMerged(tt.base))
		})
	}
}

func TestMergedOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		video string
		want  string
	}{
		{"simple", filepath.Join("tv", "a.mkv"), filepath.Join("tv", "a_merged.mkv")},
		{"absolute", "/media/tv/ep01.mp4", "/media/tv/ep01_merged.mp4"},
		{"dotted stem", "/tv/show.s01e01.mkv", "/tv/show.s01e01_merged.mkv"},
		{"spaces", "/tv/My Show 01.mkv", "/tv/My Show 01_merged.mkv"},
		{"no dir", "a.mkv", "a_merged.mkv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MergedOutputPath(tt.video)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergedOutputPath_Malformed(t *testing.T) {
	for _, video := range []string{"/tv/.hidden", "/tv/README", "/tv/trailing.", "/"} {
		t.Run(video, func(t *testing.T) {
			_, err := MergedOutputPath(video)
			assert.ErrorIs(t, err, ErrMalformedPath)
		})
	}
}

func TestMergedOutputPath_Injective(t *testing.T) {
	videos := []string{"/tv/a.mkv", "/tv/b.mkv", "/tv/a.mp4", "/tv/a b.mkv", "/tv/ab.mkv"}
	seen := make(map[string]string)
	for _, v := range videos {
		out, err := MergedOutputPath(v)
		require.NoError(t, err)
		if prev, ok := seen[out]; ok {
			t.Fatalf("%s and %s both map to %s", prev, v, out)
		}
		seen[out] = v
	}
}
