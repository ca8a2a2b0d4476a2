package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tagShow = `tag master-v1.2.3
Tagger: Li Lei <lilei@example.com>
Date:   Mon Mar 4 10:00:00 2024 +0800

fix: button padding
feat: new icon set

`

func TestParseTagger(t *testing.T) {
	got, err := ParseTagger(tagShow)
	require.NoError(t, err)
	assert.Equal(t, Tagger{
		Name:    "Li Lei",
		Email:   "lilei@example.com",
		Message: "fix: button padding\nfeat: new icon set",
	}, got)
}

func TestParseTaggerWithoutMessage(t *testing.T) {
	got, err := ParseTagger("tag x\nTagger: ci <ci@example.com>\nDate: now\n")
	require.NoError(t, err)
	assert.Equal(t, "ci", got.Name)
	assert.Empty(t, got.Message)
}

func TestParseTaggerLightweight(t *testing.T) {
	_, err := ParseTagger("")
	assert.ErrorIs(t, err, ErrNoTagger)

	_, err = ParseTagger("commit 0123abcd\nAuthor: x <x@example.com>\n")
	assert.ErrorIs(t, err, ErrNoTagger)
}
