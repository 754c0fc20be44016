package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomID_Encode(t *testing.T) {
	tests := []struct {
		name    string
		id      CustomID
		want    string
		wantErr bool
	}{
		{"domain and action", CustomID{Domain: "search", Action: "view"}, "search:view", false},
		{"menu", CustomID{Domain: "search", Action: "view", Target: "0af3"}, "search:view:0af3", false},
		{"page button", CustomID{Domain: "search", Action: "page", Target: "0af3", Args: []string{"next"}}, "search:page:0af3:next", false},
		{"separator inside a part", CustomID{Domain: "search", Action: "view", Target: "a:b"}, "", true},
		{"too long", CustomID{Domain: "search", Action: "component", Target: strings.Repeat("f", 95)}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.id.Encode()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCustomID(t *testing.T) {
	id, err := ParseCustomID("search:component:0af3:4")
	require.NoError(t, err)
	assert.Equal(t, "search", id.Domain)
	assert.Equal(t, "component", id.Action)
	assert.Equal(t, "0af3", id.Target)
	assert.Equal(t, "4", id.Arg(0))
	assert.Equal(t, "", id.Arg(1))

	id, err = ParseCustomID("search:view:0af3")
	require.NoError(t, err)
	assert.Empty(t, id.Args)

	for _, bad := range []string{"", "search", "search::0af3", ":view"} {
		_, err := ParseCustomID(bad)
		assert.Error(t, err, bad)
	}
}

func TestCustomIDBuilder(t *testing.T) {
	ids := NewCustomIDBuilder("search")

	assert.Equal(t, "search:component:0af3:12", ids.ID("component", "0af3", "12"))
	assert.Equal(t, "search:view:0af3", ids.ID("view", "0af3"))
	assert.Panics(t, func() { ids.ID("view", strings.Repeat("x", 120)) })
}
