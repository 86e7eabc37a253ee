package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"versioned", "https://res.cloudinary.com/gymspot/image/upload/v1718000000/venues/venue_10_abc.jpg", "venues/venue_10_abc"},
		{"unversioned", "https://res.cloudinary.com/gymspot/image/upload/venues/venue_10_abc.png", "venues/venue_10_abc"},
		{"no folder", "https://res.cloudinary.com/gymspot/image/upload/v1/logo.webp", "logo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractPublicIDFromURL(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPublicIDFromURLRejectsForeignURLs(t *testing.T) {
	for _, u := range []string{
		"https://example.com/images/venue.jpg",
		"https://res.cloudinary.com/gymspot/image/upload/",
		"://bad",
	} {
		_, err := extractPublicIDFromURL(u)
		assert.Error(t, err, u)
	}
}
