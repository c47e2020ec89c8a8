package config

import "github.com/Archieyoung/ExpansionHunter/pkg/genotyping"

// Parameters converts the genotyping section into analyzer parameters.
func (c *Config) Parameters() genotyping.Parameters {
	return genotyping.Parameters{
		MinLocusCoverage:           c.Genotyping.MinLocusCoverage,
		MinBreakpointSpanningReads: c.Genotyping.MinBreakpointSpanningReads,
	}
}
