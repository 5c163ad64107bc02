package loader_test

import (
	"testing"

	"toolbox/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	on := &stubFeature{name: "radix", enabled: true}
	off := &stubFeature{name: "theme", enabled: false}

	m := loader.NewManager(nil)
	m.Register(on)
	m.Register(off)

	assert.NoError(t, m.LoadAll(fiber.New()))
	assert.True(t, on.loaded)
	assert.False(t, off.loaded)
	assert.Len(t, m.Features(), 2)
}

func TestManager_LoadAllError(t *testing.T) {
	m := loader.NewManager(nil)
	m.Register(&stubFeature{name: "color", enabled: true, err: assert.AnError})

	err := m.LoadAll(fiber.New())
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorContains(t, err, "color")
}

func TestManager_Duplicate(t *testing.T) {
	m := loader.NewManager(nil)
	m.Register(&stubFeature{name: "chmod", enabled: true})
	m.Register(&stubFeature{name: "chmod", enabled: true})

	assert.ErrorContains(t, m.LoadAll(fiber.New()), "registered twice")
}
