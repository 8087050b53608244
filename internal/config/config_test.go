package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "net.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadParsesAndValidatesMinimalNetwork(t *testing.T) {
	p := writeYAML(t, `
locations:
  - name: l1
    kind: Port
  - name: l2
    kind: Port
segments:
  - name: l1-l2
    mode: truck
    source: l1
    returnSegment: l2-l1
    length: 10
    difficulty: 1
    pathModes: [unexpedited]
    capacity: 10
  - name: l2-l1
    mode: truck
    source: l2
    returnSegment: l1-l2
    length: 10
    difficulty: 1
    pathModes: [unexpedited]
    capacity: 10
fleets:
  - name: day
    startTime: 0
    speed: { truck: 40 }
customers:
  - location: l1
    transferRate: 8
    shipmentSize: 10
    destination: l2
`)
	net, err := Load(p)
	require.NoError(t, err)
	assert.Len(t, net.Locations, 2)
	assert.Len(t, net.Segments, 2)
	assert.Equal(t, "day", net.Fleets[0].Name)
	assert.Equal(t, 40.0, net.Fleets[0].Speed["truck"])
}

func TestLoadRejectsInvalidLocationKind(t *testing.T) {
	p := writeYAML(t, `
locations:
  - name: l1
    kind: Spaceport
`)
	_, err := Load(p)
	assert.Error(t, err)
}

func TestLoadRejectsOutOfRangeDifficulty(t *testing.T) {
	p := writeYAML(t, `
locations:
  - name: l1
    kind: Port
segments:
  - name: s1
    mode: truck
    source: l1
    length: 1
    difficulty: 9
    capacity: 1
`)
	_, err := Load(p)
	assert.Error(t, err)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}
