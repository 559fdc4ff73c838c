package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "wordbook version dev")
}

func TestRootCmd_HasDataDirFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("data-dir")
	require.NotNil(t, flag, "data-dir flag should exist")
	assert.Equal(t, "", flag.DefValue)
}

func TestDataDirOverride(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "absent", args: []string{"word", "list"}, want: ""},
		{name: "space form", args: []string{"--data-dir", "/tmp/words", "word", "list"}, want: "/tmp/words"},
		{name: "equals form", args: []string{"word", "list", "--data-dir=/tmp/words"}, want: "/tmp/words"},
		{name: "mixed with other flags", args: []string{"-v", "search", "apple", "--data-dir", "/tmp/words"}, want: "/tmp/words"},
		{name: "no args", args: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DataDirOverride(tt.args))
		})
	}
}

func TestServeCmd_Use(t *testing.T) {
	assert.Equal(t, "serve", serveCmd.Use)
}

func TestServeCmd_HasAddrFlag(t *testing.T) {
	flag := serveCmd.Flags().Lookup("addr")
	require.NotNil(t, flag, "addr flag should exist")
}

func TestServeCmd_NotConfigured(t *testing.T) {
	searchService = nil
	wordService = nil

	_, err := execute(t, "serve")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "services not configured")
}
