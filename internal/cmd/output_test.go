package cmd

import (
	"bytes"
	"testing"

	"github.com/Cyclone1070/grepbridge/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		mode    string
		want    bool
		wantErr bool
	}{
		{colorAlways, true, false},
		{colorNever, false, false},
		{colorAuto, false, false}, // not a terminal
		{"", false, false},
		{"rainbow", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			got, err := useColor(tt.mode, &buf)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrinter_Result(t *testing.T) {
	tests := []struct {
		name   string
		result client.Result
		want   string
	}{
		{"directory mode", client.Result{FileName: "a/b.txt", LineNumber: 4, Text: "hello\n"}, "a/b.txt:4:hello\n"},
		{"single file", client.Result{LineNumber: 7, Text: "hello\r\n"}, "7:hello\n"},
		{"unknown line", client.Result{FileName: "x", LineNumber: -1, Text: "hello"}, "x:hello\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, newPrinter(&buf, false).result(tt.result))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinter_Colored(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newPrinter(&buf, true).result(client.Result{FileName: "f", LineNumber: 1, Text: "x"}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestPrinter_Count(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf, false)
	require.NoError(t, p.count("", 3))
	require.NoError(t, p.count("dir/f", 2))
	assert.Equal(t, "3\ndir/f:2\n", buf.String())
}
