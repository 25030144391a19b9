package loader

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSharedRoot(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		word string
		prev string
		want string
	}{
		"no previous word":           {word: "apple", prev: "", want: ""},
		"no overlap":                 {word: "pear", prev: "fig", want: ""},
		"common prefix":              {word: "internet", prev: "internal", want: "intern"},
		"identical words":            {word: "apple", prev: "apple", want: "apple"},
		"match resumes after a miss": {word: "abc", prev: "axc", want: "ac"},
		"previous word shorter":      {word: "applesauce", prev: "apple", want: "apple"},
		"multibyte runes":            {word: "süden", prev: "süß", want: "sü"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, sharedRoot(tc.word, tc.prev))
		})
	}
}

func TestWordAttributes(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	attrs := wordAttributes("internet", "internal", 7)
	req.Equal([]byte("7"), attrs["att_index"])
	req.Equal([]byte("8"), attrs["att_letters"])
	req.Equal([]byte("intern"), attrs["att_shared_root_with_prev"])

	// letter count is runes, not bytes
	attrs = wordAttributes("süß", "", 0)
	req.Equal([]byte("3"), attrs["att_letters"])
	req.Equal([]byte(""), attrs["att_shared_root_with_prev"])
}
