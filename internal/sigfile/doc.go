// Package sigfile renders a SignatureSet as a simplified signature file
// and reads such files back. The rendered form is a commented header
// followed by a YAML document; rendering the same set always yields the
// same bytes, so generated files diff cleanly under version control.
package sigfile
