package variant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/imagegen/internal/variant"
)

func TestCatalog_Parents(t *testing.T) {
	t.Parallel()

	c := variant.DefaultCatalog()
	assert.Equal(t, []string{"alpine", "nvidia", "scratch", "ubuntu", "vaapi"}, c.Parents())
}

func TestCatalog_Find(t *testing.T) {
	t.Parallel()

	c := variant.DefaultCatalog()

	v, ok := c.Find("vaapi2204")
	assert.True(t, ok)
	assert.Equal(t, "vaapi", v.Parent)

	_, ok = c.Find("debian12")
	assert.False(t, ok)
	assert.True(t, c.Contains("alpine313"))
}

func TestCatalog_IsLayerParent(t *testing.T) {
	t.Parallel()

	c := variant.Catalog{
		{Name: "ubuntu2004", Parent: "ubuntu"},
		{Name: "ubuntu2204", Parent: "ubuntu"},
		{Name: "alpine313", Parent: "alpine"},
	}

	tests := []struct {
		name string
		want bool
	}{
		{name: "ubuntu2204", want: true},
		{name: "ubuntu2004", want: false},
		{name: "alpine313", want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, ok := c.Find(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.want, c.IsLayerParent(v))
		})
	}
}

func TestCatalog_IsLayerParent_SiblingFilteredOut(t *testing.T) {
	t.Parallel()

	c := variant.Catalog{
		{Name: "ubuntu2004", Parent: "ubuntu"},
	}

	assert.True(t, c.IsLayerParent(variant.Variant{Name: "ubuntu2004", Parent: "ubuntu"}))
	assert.False(t, c.IsLayerParent(variant.Variant{Name: "debian12", Parent: "debian"}))
}
