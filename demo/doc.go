// Package demo runs named pattern scenarios and captures what they print.
//
// A Scenario writes plain lines to an io.Writer. The Runner hands it a
// Transcript, which splits the written bytes into ordered Events, so the
// same scenario code can print straight to os.Stdout from a standalone
// main or be captured and asserted on in tests.
//
// Scenarios are looked up through a Registry. Nothing registers itself:
// callers build a Registry explicitly (see package catalog) and every run
// constructs its own object graph, so no state leaks between runs.
//
// Quick usage
//
//	reg := demo.NewRegistry().Provide(chain.Demo)
//	events, err := demo.NewRunner(reg).Run("chain-of-responsibility")
package demo
