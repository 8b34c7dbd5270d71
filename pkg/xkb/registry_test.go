package xkb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const evdevXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE xkbConfigRegistry SYSTEM "xkb.dtd">
<xkbConfigRegistry version="1.1">
  <layoutList>
    <layout>
      <configItem>
        <name>no</name>
        <shortDescription>no</shortDescription>
        <description>Norwegian</description>
        <languageList><iso639Id>nor</iso639Id></languageList>
      </configItem>
      <variantList>
        <variant>
          <configItem>
            <name>smi</name>
            <description>Northern Saami (Norway)</description>
          </configItem>
        </variant>
      </variantList>
    </layout>
  </layoutList>
</xkbConfigRegistry>
`

func TestRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evdev.xml")
	require.NoError(t, os.WriteFile(path, []byte(evdevXML), 0o644))

	registry, err := ParseRegistry(path)
	require.NoError(t, err)
	require.Len(t, registry.LayoutList.Layout, 1)
	assert.Equal(t, []string{"nor"}, registry.LayoutList.Layout[0].ConfigItem.Languages)

	assert.Equal(t, "Norwegian", registry.Description("no", ""))
	assert.Equal(t, "Norwegian", registry.Description("no", "basic"))
	assert.Equal(t, "Northern Saami (Norway)", registry.Description("no", "smi"))
	assert.Empty(t, registry.Description("no", "dvorak"))
	assert.Empty(t, registry.Description("se", ""))

	layout, variant, ok := registry.Lookup("Northern Saami (Norway)")
	require.True(t, ok)
	assert.Equal(t, "no", layout)
	assert.Equal(t, "smi", variant)

	layout, variant, ok = registry.Lookup("Norwegian")
	require.True(t, ok)
	assert.Equal(t, "no", layout)
	assert.Empty(t, variant)

	_, _, ok = registry.Lookup("Klingon")
	assert.False(t, ok)

	var missing *Registry
	assert.Empty(t, missing.Description("no", ""))
}

func TestParseRegistryMissingFile(t *testing.T) {
	_, err := ParseRegistry(filepath.Join(t.TempDir(), "nope.xml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
