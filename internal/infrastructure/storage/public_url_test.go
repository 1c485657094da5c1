package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolverPublicURL(t *testing.T) {
	r := NewResolver("https://storage.example.com/")

	assert.Equal(t,
		"https://storage.example.com/storage/v1/object/public/businessdocuments/docs/permit.png",
		r.PublicURL("businessdocuments", "docs/permit.png"))

	// leading slashes in stored paths are trimmed
	assert.Equal(t,
		"https://storage.example.com/storage/v1/object/public/businessdocuments/docs/permit.png",
		r.PublicURL("businessdocuments", "/docs/permit.png"))

	// absolute URLs pass through untouched
	absolute := "https://cdn.example.com/permit.png"
	assert.Equal(t, absolute, r.PublicURL("businessdocuments", absolute))

	assert.Empty(t, r.PublicURL("businessdocuments", ""))
}
