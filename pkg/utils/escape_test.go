package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"all specials", `<script>&"'`, "&lt;script&gt;&amp;&quot;&#39;"},
		{"plain text untouched", "Alpha Kitchen", "Alpha Kitchen"},
		{"ampersand not double escaped", "Fish & Chips", "Fish &amp; Chips"},
		{"already escaped input escapes again", "&amp;", "&amp;amp;"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EscapeHTML(tt.in))
		})
	}
}
