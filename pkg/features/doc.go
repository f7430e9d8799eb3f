// Package features turns a raw URL string into the fixed, ordered numeric
// feature vector the phishing classifier was fitted on.
//
// Extraction never fails on bad input: malformed URLs degrade to empty
// components and a failed registration lookup degrades to default domain
// signals. The only error an extraction can return is a schema mismatch,
// which means the assembler and the declared schema disagree.
package features
