package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agrimlabs/outreach-agent/internal/entity"
)

// Prompt construction is deliberately deterministic: same lead and same
// corpus always produce the same prompt text.

func buildMatchPrompt(requirements map[string]string, projects []entity.PastProject) string {
	var b strings.Builder
	b.WriteString("Match the following past projects to the lead requirements: ")
	b.WriteString(formatRequirements(requirements))
	b.WriteString("\n")
	for _, p := range projects {
		fmt.Fprintf(&b, "%s: %s (Outcome: %s)\n", p.ProjectName, p.Details, p.Results)
	}
	b.WriteString("Return the best matching projects.")
	return b.String()
}

func buildDraftPrompt(name, company string, requirements map[string]string, projects []entity.PastProject) string {
	var b strings.Builder
	b.WriteString("Generate a custom email draft for a new lead.\n")
	fmt.Fprintf(&b, "Lead Details: Name: %s, Company: %s, Requirements: %s.\n",
		name, company, formatRequirements(requirements))
	b.WriteString("Include references to past successful AI projects: ")
	for _, p := range projects {
		fmt.Fprintf(&b, "%s - %s; ", p.ProjectName, p.Details)
	}
	b.WriteString("\nExplain why our services are best suited to help the client.")
	return b.String()
}

func buildRefinePrompt(currentDraft, feedback string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current email draft: %s\n", currentDraft)
	fmt.Fprintf(&b, "Update the email draft with the following feedback: %s", feedback)
	return b.String()
}

// formatRequirements renders the map with sorted keys so prompts do not
// change between runs on the same input.
func formatRequirements(requirements map[string]string) string {
	if len(requirements) == 0 {
		return ""
	}

	keys := make([]string, 0, len(requirements))
	for k := range requirements {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+requirements[k])
	}
	return strings.Join(parts, ", ")
}
