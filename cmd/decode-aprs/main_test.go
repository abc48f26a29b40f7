package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertOutputContains(t *testing.T, command func(), expectedOutputContains string) {
	t.Helper()

	oldStdout := os.Stdout
	defer func() { os.Stdout = oldStdout }()

	r, w, _ := os.Pipe()
	os.Stdout = w

	command()

	w.Close()
	os.Stdout = oldStdout

	outputBytes, readErr := io.ReadAll(r)
	require.NoError(t, readErr)

	assert.Contains(t, string(outputBytes), expectedOutputContains)
}

func TestDecodeAPRSLinePosition(t *testing.T) {
	assertOutputContains(t, func() {
		DecodeAPRSLine("KF7HVM-2>APRS:/092345z4903.50N/07201.75W>Test", false)
	}, "Position: lat=49.05833")
}

func TestDecodeAPRSLineError(t *testing.T) {
	assertOutputContains(t, func() {
		DecodeAPRSLine("not a valid tnc2 line without a colon", false)
	}, "ERROR")
}

func TestDecodeAPRSLineMessage(t *testing.T) {
	assertOutputContains(t, func() {
		DecodeAPRSLine("N0CALL>APRS::KF7HVM   :Hello{001", false)
	}, "Message to \"KF7HVM\"")
}
