package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := `
# comment line
loglevel debug
  # indented comment
LogDir /tmp/safedict
filelog yes
data file:///tmp/data.yaml
prompt dict>
preload a=1, b=2 ,c=3
unknown value
`
	props, err := parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "debug", props.LogLevel)
	assert.Equal(t, "/tmp/safedict", props.LogDir)
	assert.True(t, props.FileLog)
	assert.Equal(t, "file:///tmp/data.yaml", props.Data)
	assert.Equal(t, "dict>", props.Prompt)
	assert.Equal(t, []string{"a=1", "b=2", "c=3"}, props.Preload)
	assert.Equal(t, defaultProperties.TimeFormat, props.TimeFormat)
}

func TestParseBool(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "yes", value: "yes", want: true},
		{name: "no", value: "no", want: false},
		{name: "true is not yes", value: "true", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			props, err := parse(strings.NewReader("filelog " + tc.value))
			require.NoError(t, err)
			assert.Equal(t, tc.want, props.FileLog)
		})
	}
}

func TestSetUpConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "safedict.conf")
	require.NoError(t, os.WriteFile(path, []byte("loglevel warn\nlogdir \n"), 0o644))

	require.NoError(t, SetUpConfig(path))
	assert.Equal(t, "warn", Current.LogLevel)
	assert.Equal(t, ".", Current.LogDir)
	assert.Len(t, Current.RunID, 40)
	assert.True(t, filepath.IsAbs(Current.CfPath))

	require.NoError(t, SetUpConfig(""))
	assert.Equal(t, "info", Current.LogLevel)
	assert.Empty(t, Current.CfPath)

	assert.Error(t, SetUpConfig(filepath.Join(t.TempDir(), "missing.conf")))
}
