// Package main provides the entry point for the cpgannot CLI.
//
// cpgannot annotates CpG probe identifiers from DNA methylation
// microarrays (EPICv1, EPICv2, MSA) with genomic location and gene
// metadata, joining them against the fixed Infinium annotation manifests
// or a local annotation table.
//
// Usage:
//
//	cpgannot <input_file> <array_type>
//	cpgannot probes.txt EPICv2 --output_file annotated.tsv
//
// See --help for all available options.
package main

// main is the entry point for cpgannot.
func main() {
	Execute()
}
