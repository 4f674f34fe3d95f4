// Package rules defines the canonical MUR-series rule codes enforced by mustuse.
//
// Each rule represents a verifiable invariant about how Result values are
// consumed. The MUR-series provides a stable numeric and textual identity
// for every rule, so violations can be reported, filtered and suppressed
// consistently across hosts.
//
// # Structure
//
// Rule codes render as “MUR<NNN>: <id>”, where <id> is the identifier
// hosts register the rule under:
//
//	rules.MUR001MustUseResult.String()      → "MUR001: must-use-result"
//	rules.MUR001MustUseResult.ID()          → "must-use-result"
//	rules.MUR001MustUseResult.Message("mustUse")
//	    → "Result must be handled with match, unwrapOr, or _unsafeUnwrap."
//
// Every rule carries static metadata consumed by rule registries: type,
// description, default severity and message templates keyed by
// [MessageID]. Rules accept no option schema of their own; tunables such as
// the Result vocabulary are passed to the detector constructor.
//
// # Notes
//
//   - Rule identifiers are stable; never renumber existing codes.
//   - Unknown codes render as "rule-unknown(N)".
package rules
