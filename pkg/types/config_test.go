// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportConfig_WithDefaults(t *testing.T) {
	got := ExportConfig{}.WithDefaults()
	assert.Equal(t, DefaultExtension, got.Extension)
	assert.Equal(t, DefaultFormat, got.Format)
	assert.False(t, got.ShowInput, "zero config hides code cells")

	kept := ExportConfig{Extension: ".nb", Format: "markdown", ShowInput: true}.WithDefaults()
	assert.Equal(t, ".nb", kept.Extension)
	assert.Equal(t, "markdown", kept.Format)
	assert.True(t, kept.ShowInput)
}
