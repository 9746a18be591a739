package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeImageURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"imgur page link", "https://imgur.com/a1B2c3D", "https://i.imgur.com/a1B2c3D.jpg"},
		{"imgur http page link", "http://imgur.com/a1B2c3D", "https://i.imgur.com/a1B2c3D.jpg"},
		{"already direct", "https://i.imgur.com/a1B2c3D.jpg", "https://i.imgur.com/a1B2c3D.jpg"},
		{"other host untouched", "https://cdn.example.com/img.png", "https://cdn.example.com/img.png"},
		{"whitespace trimmed", "  https://cdn.example.com/img.png ", "https://cdn.example.com/img.png"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, NormalizeImageURL(tt.in))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+97699112233", NormalizePhone("+976 9911-2233"))
	assert.Equal(t, "99112233", NormalizePhone("9911 2233"))
	assert.Equal(t, "99112233", NormalizePhone("(99)11-22-33"))
	assert.Equal(t, "", NormalizePhone(""))
}
