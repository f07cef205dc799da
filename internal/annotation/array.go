package annotation

import "strings"

// ArrayType identifies a methylation microarray generation. Each generation
// has exactly one fixed remote annotation manifest; there is no dynamic
// registration of new array types.
type ArrayType string

// Supported array types. The canonical form is upper-case; ParseArrayType
// accepts any casing.
const (
	// EPICv1 is the Illumina Infinium MethylationEPIC v1.0 array.
	EPICv1 ArrayType = "EPICV1"

	// EPICv2 is the Illumina Infinium MethylationEPIC v2.0 array.
	EPICv2 ArrayType = "EPICV2"

	// MSA is the Illumina Methylation Screening Array.
	MSA ArrayType = "MSA"
)

// manifestBaseURL is the root of the Zhou lab Infinium annotation
// repository, the fixed source for all three array manifests.
const manifestBaseURL = "https://raw.githubusercontent.com/zhou-lab/InfiniumAnnotationV1/main/Anno"

// sourceURLs maps each array type to its fixed hg38 manifest URL.
var sourceURLs = map[ArrayType]string{
	EPICv1: manifestBaseURL + "/EPIC/EPIC.hg38.manifest.tsv.gz",
	EPICv2: manifestBaseURL + "/EPICv2/EPICv2.hg38.manifest.tsv.gz",
	MSA:    manifestBaseURL + "/MSA/MSA.hg38.manifest.tsv.gz",
}

// SupportedArrayTypes returns the fixed set of supported array types in
// display order. The slice is a copy; callers may modify it.
func SupportedArrayTypes() []ArrayType {
	return []ArrayType{EPICv1, EPICv2, MSA}
}

// ParseArrayType resolves a user-supplied array-type tag to an ArrayType.
// Matching is case-insensitive ("EPICv1", "epicv1", and "EPICV1" are
// equivalent). A tag outside the fixed set fails with
// *UnsupportedArrayTypeError before any I/O is attempted.
func ParseArrayType(tag string) (ArrayType, error) {
	at := ArrayType(strings.ToUpper(strings.TrimSpace(tag)))
	if _, ok := sourceURLs[at]; !ok {
		return "", &UnsupportedArrayTypeError{Tag: tag}
	}
	return at, nil
}

// String returns the canonical upper-case tag.
func (a ArrayType) String() string {
	return string(a)
}

// SourceURL returns the fixed remote manifest URL for this array type.
func (a ArrayType) SourceURL() string {
	return sourceURLs[a]
}

// CacheFileName returns the local file name used when caching the
// downloaded manifest, e.g. "epicv2_annotation.tsv.gz".
func (a ArrayType) CacheFileName() string {
	return strings.ToLower(string(a)) + "_annotation.tsv.gz"
}
