// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cowriter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/blueprint-engine/pkg/types"
)

func TestVerifyCitations_AllKnown(t *testing.T) {
	report := "Finding one [Smith, 2023]. Finding two [Zhang, 2022; Kim, 2021]."
	n := types.Narrative{
		Hook:     "Hook [Smith, 2023]",
		DeepDive: "Core [Kim, 2021] and [Zhang, 2022]",
	}
	assert.Empty(t, VerifyCitations(n, report))
}

func TestVerifyCitations_ReportsUnknown(t *testing.T) {
	report := "Finding one [Smith, 2023]."
	n := types.Narrative{
		Hook:       "Hook [Smith, 2023]",
		DeepDive:   "Core [Invented, 2020]",
		Conclusion: "End [Invented, 2020] and [Another, 2019]",
	}
	assert.Equal(t, []string{"Another, 2019", "Invented, 2020"}, VerifyCitations(n, report))
}

func TestVerifyCitations_IgnoresNonCitationBrackets(t *testing.T) {
	n := types.Narrative{DeepDive: "Press [pause] here. See [figure 2]."}
	assert.Empty(t, VerifyCitations(n, "no citations at all"))
}

func TestExtractCitations_SplitsMultiCitations(t *testing.T) {
	got := extractCitations("claim [Zhang, 2022; Kim et al., 2021a]")
	assert.Equal(t, []string{"Zhang, 2022", "Kim et al., 2021a"}, got)
}
