package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		name string
		want Tag
	}{
		{"master-v1.2.3", Tag{Name: "master-v1.2.3", Branch: "master", Version: "1.2.3"}},
		{"release-pkg-a-v2.0.0", Tag{Name: "release-pkg-a-v2.0.0", Branch: "release", Package: "pkg-a", Version: "2.0.0"}},
		{"dev-V0.0.1", Tag{Name: "dev-V0.0.1", Branch: "dev", Version: "0.0.1"}},
		{"master-ui-kit-core-1.0.0", Tag{Name: "master-ui-kit-core-1.0.0", Branch: "master", Package: "ui-kit-core", Version: "1.0.0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTag(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Package != "", got.MultiPackage())
		})
	}
}

func TestParseTagInvalid(t *testing.T) {
	for _, name := range []string{"", "v1.2.3", "master", "master-", "-v1.0.0", "master--v1.0.0", "master-vlatest", "master-v1.2"} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTag(name)
			assert.ErrorIs(t, err, ErrTagFormat)
		})
	}
}

func TestSameVersion(t *testing.T) {
	assert.True(t, sameVersion("1.2.3", "1.2.3"))
	assert.True(t, sameVersion("v1.2.3", "1.2.3"))
	assert.False(t, sameVersion("1.2.3", "1.2.4"))
	assert.False(t, sameVersion("", "1.0.0"))
	assert.True(t, sameVersion("next", "next"))
}
