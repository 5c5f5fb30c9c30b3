package commands

import (
	"bytes"
	"io/ioutil"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSimulate(t *testing.T) {
	log.SetOutput(ioutil.Discard)
	out := &bytes.Buffer{}

	results, err := simulate(out, 42, 3, 150, false)
	require.NoError(t, err)
	require.Len(t, results, 3)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	for i, res := range results {
		require.NotEmpty(t, res.ID)
		require.True(t, res.Turns >= 1 && res.Turns <= 150, "turns: %d", res.Turns)
		require.True(t, res.Length >= 3, "length: %d", res.Length)
		if res.Cause == "" {
			require.Equal(t, int64(150), res.Turns)
		}
		require.True(t, strings.HasPrefix(lines[i], "game "), lines[i])
	}
}

func TestSimulate_SameSeedSameGames(t *testing.T) {
	log.SetOutput(ioutil.Discard)

	first, err := simulate(ioutil.Discard, 7, 2, 100, false)
	require.NoError(t, err)
	second, err := simulate(ioutil.Discard, 7, 2, 100, false)
	require.NoError(t, err)

	for i := range first {
		require.NotEqual(t, first[i].ID, second[i].ID)
		first[i].ID, second[i].ID = "", ""
	}
	require.Equal(t, first, second)
}

func TestSimulate_Dump(t *testing.T) {
	log.SetOutput(ioutil.Discard)
	out := &bytes.Buffer{}

	_, err := simulate(out, 3, 1, 20, true)
	require.NoError(t, err)
	require.Contains(t, out.String(), "controller.Snapshot")
}

func TestSimulate_InvalidArgs(t *testing.T) {
	_, err := simulate(ioutil.Discard, 1, 0, 10, false)
	require.Error(t, err)
	_, err = simulate(ioutil.Discard, 1, 1, 0, false)
	require.Error(t, err)
}
