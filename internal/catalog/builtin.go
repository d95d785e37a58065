package catalog

// Builtin returns the standard template portfolio. Categories are ordered by
// methodological family, from cross-sectional designs to advanced latent
// structures, not lexicographically.
func Builtin() *Catalog {
	return New([]Category{
		{
			Name: "Cross-Sectional Models",
			Examples: []Example{
				{Name: "Simple Mediation Model", Syntax: `# Simple Mediation Model
Mediator ~ IndependentVariable
DependentVariable ~ Mediator + IndependentVariable
`},
				{Name: "Full Mediation Model", Syntax: `# Full Mediation Model
Mediator ~ IndependentVariable
DependentVariable ~ Mediator
IndependentVariable ~~ Mediator
`},
				{Name: "Confirmatory Factor Analysis", Syntax: `# Confirmatory Factor Analysis
Factor1 =~ Indicator1 + Indicator2 + Indicator3
Factor2 =~ Indicator4 + Indicator5 + Indicator6
Factor1 ~~ Factor2
`},
			},
		},
		{
			Name: "Longitudinal Models",
			Examples: []Example{
				{Name: "Cross-Lagged Panel Model", Syntax: `# Cross-Lagged Panel Model
Y1 ~ X0
X1 ~ Y0
Y2 ~ Y1 + X1
X2 ~ X1 + Y1
`},
				{Name: "Latent Growth Curve Model", Syntax: `# Latent Growth Curve Model
Intercept =~ 1*Y1 + 1*Y2 + 1*Y3
Slope =~ 0*Y1 + 1*Y2 + 2*Y3
Y1 ~ Intercept + 0*Slope
Y2 ~ Intercept + 1*Slope
Y3 ~ Intercept + 2*Slope
`},
			},
		},
		{
			Name: "Multi-Group Models",
			Examples: []Example{
				{Name: "Measurement Invariance", Syntax: `# Measurement Invariance
Factor1 =~ Indicator1 + Indicator2 + Indicator3
Factor2 =~ Indicator4 + Indicator5 + Indicator6
# Invariant across groups
Factor1 ~~ Factor2
`},
				{Name: "Structural Multi-Group Model", Syntax: `# Structural Multi-Group Model
Mediator ~ IndependentVariable
DependentVariable ~ Mediator + IndependentVariable
Mediator ~~ IndependentVariable
# Constraints across groups
Mediator ~~ IndependentVariable @1
DependentVariable ~~ Mediator @1
`},
			},
		},
		{
			Name: "Advanced Models",
			Examples: []Example{
				{Name: "Mediation with Moderation", Syntax: `# Mediation with Moderation
Mediator ~ IndependentVariable + Moderator
DependentVariable ~ Mediator + IndependentVariable + Moderator + IndependentVariable*Moderator
IndependentVariable ~~ Moderator
`},
				{Name: "Higher-Order Factor Model", Syntax: `# Higher-Order Factor Model
Factor1 =~ Indicator1 + Indicator2 + Indicator3
Factor2 =~ Indicator4 + Indicator5 + Indicator6
HigherOrderFactor =~ Factor1 + Factor2
HigherOrderFactor ~~ HigherOrderFactor
`},
				{Name: "Latent Interaction Model", Syntax: `# Latent Interaction Model
FactorA =~ X1 + X2 + X3
FactorB =~ Y1 + Y2 + Y3
Interaction =~ FactorA * FactorB
DependentVariable ~ Interaction + FactorA + FactorB
`},
				{Name: "Bifactor Model", Syntax: `# Bifactor Model
GeneralFactor =~ X1 + X2 + X3 + X4 + X5
SpecificFactor1 =~ X1 + X2 + X3
SpecificFactor2 =~ X4 + X5
GeneralFactor ~~ SpecificFactor1 + SpecificFactor2
SpecificFactor1 ~~ SpecificFactor2
`},
			},
		},
	})
}
