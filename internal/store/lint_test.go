package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLintCleanCatalog(t *testing.T) {
	problems, err := Lint(writeSample(t, sampleCatalog))
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestLintProblems(t *testing.T) {
	body := `[tables]
normal = "normal.png"

["NoSymbol"]
table = "normal"
pronouns = "she/her"
author = "x"
embed_color = 0x111111
coordinates = { x = 0, y = 0 }

["TwoHomes"]
table = "normal"
path = "two.png"
symbol = "T"
pronouns = ""
author = ""
embed_color = 0x222222
coordinates = { x = 0, y = 0 }

["Floating"]
table = "elsewhere"
symbol = "F"
pronouns = ""
author = ""
embed_color = 0x1000000

["Typo"]
path = "typo.png"
symbol = "Ty"
pronouns = ""
author = ""
embed_color = 0x333333
colour = 7
`
	problems, err := Lint(writeSample(t, body))
	require.NoError(t, err)

	joined := ""
	for _, p := range problems {
		joined += p + "\n"
	}
	assert.Contains(t, joined, `element "NoSymbol": missing key "symbol"`)
	assert.Contains(t, joined, `element "TwoHomes": has both table and path`)
	assert.Contains(t, joined, `element "Floating": references unknown table "elsewhere"`)
	assert.Contains(t, joined, `element "Floating": placed on a table but missing coordinates`)
	assert.Contains(t, joined, `element "Floating": embed_color 0x1000000 outside 24-bit range`)
	assert.Contains(t, joined, `element "Typo": extraneous key "colour"`)
}

func TestLintUnparseable(t *testing.T) {
	_, err := Lint(writeSample(t, "= nonsense ="))
	assert.Error(t, err)
}
