// Package annotation implements the core of cpgannot: the methylation
// array-type registry with its fixed annotation sources, the annotation
// table loader with schema validation, and the chunked left-join engine
// that attaches genomic metadata to probe ID lists.
package annotation
