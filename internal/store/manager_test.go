package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_Outputs(t *testing.T) {
	m := NewManager()
	assert.Empty(t, m.Outputs())

	m.AddOutput("/d/b.jpg.gaaqoo_00000002.jpg")
	m.AddOutput("/d/a.jpg.gaaqoo_00000001.jpg")
	m.AddOutput("/d/b.jpg.gaaqoo_00000002.jpg")

	assert.Equal(t, []string{
		"/d/b.jpg.gaaqoo_00000002.jpg",
		"/d/a.jpg.gaaqoo_00000001.jpg",
	}, m.Outputs())
	assert.True(t, m.HasOutput("/d/a.jpg.gaaqoo_00000001.jpg"))
	assert.False(t, m.HasOutput("/d/c.jpg.gaaqoo_00000003.jpg"))
}

func TestManager_OutputsIsACopy(t *testing.T) {
	m := NewManager()
	m.AddOutput("/d/a")
	out := m.Outputs()
	out[0] = "changed"
	assert.Equal(t, []string{"/d/a"}, m.Outputs())
}

func TestManager_Retains(t *testing.T) {
	m := NewManager()
	m.AddOutput("/d/a.jpg.gaaqoo_11111111.jpg")
	m.Protect("/d/sub/b.jpg.gaaqoo_")

	assert.True(t, m.Retains("/d/a.jpg.gaaqoo_11111111.jpg"))
	assert.False(t, m.Retains("/d/a.jpg.gaaqoo_22222222.jpg"), "stale hash of a converted source")
	assert.True(t, m.Retains("/d/sub/b.jpg.gaaqoo_33333333.jpg"), "prior output of a failed source")
	assert.False(t, m.Retains("/d/sub/bb.jpg.gaaqoo_33333333.jpg"))
	assert.False(t, m.Retains("/d/orphan.txt"))
	assert.Equal(t, []string{"/d/sub/b.jpg.gaaqoo_"}, m.Protected())
}
