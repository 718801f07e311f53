// SPDX-License-Identifier: MIT

package textfmt_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/numerics/internal/textfmt"
	"github.com/stretchr/testify/assert"
)

func TestTable_ContainsCells(t *testing.T) {
	out := textfmt.Table([]string{"n", "x"}, [][]string{{"0", "1.50"}, {"1", "1.35"}})
	for _, want := range []string{"n", "x", "1.50", "1.35"} {
		assert.Contains(t, out, want)
	}
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 4, "header, separator, two rows and borders")
}

func TestHelpers(t *testing.T) {
	assert.Len(t, textfmt.Rule(), textfmt.RuleWidth)
	assert.Contains(t, textfmt.Section("DOUBLE"), "\nDOUBLE\n")
	assert.Equal(t, "1.500", textfmt.F(1.5, 3))
	assert.Equal(t, "1.50e-03", textfmt.E(0.0015, 2))
	assert.Equal(t, "7", textfmt.I(7))
}
