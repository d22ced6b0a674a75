package hunt

// ============================================================================
// Contribution Sources
// ============================================================================

const (
	SourceEnemy     = "Enemy"
	SourceTechnique = "Technique"
	SourceBox       = "Box"
)

// ============================================================================
// Run Estimates
// ============================================================================

// TargetProbability is the chance of at least one drop that run estimates aim for
const TargetProbability = 0.95
