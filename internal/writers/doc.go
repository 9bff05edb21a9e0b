// Package writers turns a translated sequence and its run report into
// serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (raw line, wrapped FASTA, JSON).
//   • translate stays domain-only; app stays orchestration-only.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package writers
