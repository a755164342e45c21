package registry_test

import (
	"testing"

	"github.com/nfrund/lessonhub/internal/config"
	"github.com/nfrund/lessonhub/internal/registry"
	"github.com/stretchr/testify/assert"
)

type greeter struct{ name string }

func TestRegistry(t *testing.T) {
	cfg := &config.Config{ServerAddr: ":9999"}
	reg := registry.New(cfg)
	assert.Equal(t, ":9999", reg.Config().GetServerAddr())

	key := registry.Key[*greeter]("test.greeter")

	_, ok := registry.Get(reg, key)
	assert.False(t, ok)
	assert.Panics(t, func() { registry.MustGet(reg, key) })

	registry.Set(reg, key, &greeter{name: "kinder"})

	got, ok := registry.Get(reg, key)
	assert.True(t, ok)
	assert.Equal(t, "kinder", got.name)
	assert.Same(t, got, registry.MustGet(reg, key))

	t.Run("same name with a different type is not found", func(t *testing.T) {
		other := registry.Key[string]("test.greeter")
		_, ok := registry.Get(reg, other)
		assert.False(t, ok)
	})
}
