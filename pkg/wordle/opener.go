package wordle

// OpenerEntropy documents the reference expected-information-gain
// values against the standard ~2315-word answer set (§8's "entropy
// sanity" table), so SolverConfig.Opener can be swapped for an
// alternative of equal or greater entropy without recomputing it at
// startup (§4.8 permits this explicitly).
var OpenerEntropy = map[string]float64{
	"SALET": 5.89,
	"STARE": 5.83,
	"CRANE": 5.70,
	"ROATE": 5.88,
}
