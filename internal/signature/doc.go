// Package signature validates and canonicalizes byte-sequence expressions
// from registry export reports into the simplified signature grammar.
//
// The canonical grammar is a flat token string:
//
//	504B0304          literal hex run (even length, upper case)
//	??                single-byte wildcard
//	{9}  {4-12}  {4-*} bounded and half-bounded gaps
//	*                 unbounded gap
//	[41:5A]  [!00]    byte ranges, optionally negated
//	(43|44|[46:48])   alternation of literals and ranges
//
// Variable offsets declared on BOF and EOF sequences are folded into the
// pattern as a leading or trailing gap, matching the convention of the
// upstream signature format.
//
// Everything in this package is purely functional: normalizing one
// expression depends on nothing but that expression, so each pattern can
// be unit-tested in isolation.
package signature
