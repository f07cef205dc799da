package annotation

import (
	"errors"
	"strings"
	"testing"
)

// TestParseArrayType tests array-type tag resolution, including the
// case-insensitive matching the CLI relies on.
func TestParseArrayType(t *testing.T) {
	t.Parallel()

	t.Run("accepts all supported tags regardless of case", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			tag  string
			want ArrayType
		}{
			{"EPICv1", EPICv1},
			{"EPICV1", EPICv1},
			{"epicv1", EPICv1},
			{"EPICv2", EPICv2},
			{"epicv2", EPICv2},
			{"MSA", MSA},
			{"msa", MSA},
			{"  MSA  ", MSA},
		}
		for _, tt := range tests {
			got, err := ParseArrayType(tt.tag)
			if err != nil {
				t.Errorf("ParseArrayType(%q) returned error: %v", tt.tag, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseArrayType(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		}
	})

	t.Run("rejects tags outside the fixed set", func(t *testing.T) {
		t.Parallel()

		for _, tag := range []string{"", "EPIC", "EPICv3", "450K", "msa2"} {
			_, err := ParseArrayType(tag)
			if err == nil {
				t.Errorf("ParseArrayType(%q) expected error, got nil", tag)
				continue
			}
			var uerr *UnsupportedArrayTypeError
			if !errors.As(err, &uerr) {
				t.Errorf("ParseArrayType(%q) error type = %T, want *UnsupportedArrayTypeError", tag, err)
				continue
			}
			if uerr.Tag != tag {
				t.Errorf("error tag = %q, want %q", uerr.Tag, tag)
			}
		}
	})

	t.Run("error message names the supported set", func(t *testing.T) {
		t.Parallel()

		_, err := ParseArrayType("450K")
		if err == nil {
			t.Fatal("expected error")
		}
		for _, want := range []string{"EPICV1", "EPICV2", "MSA", "450K"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("error %q does not mention %q", err.Error(), want)
			}
		}
	})
}

// TestArrayTypeSourceURL verifies the fixed manifest URL per array type.
func TestArrayTypeSourceURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arrayType ArrayType
		wantURL   string
	}{
		{EPICv1, "https://raw.githubusercontent.com/zhou-lab/InfiniumAnnotationV1/main/Anno/EPIC/EPIC.hg38.manifest.tsv.gz"},
		{EPICv2, "https://raw.githubusercontent.com/zhou-lab/InfiniumAnnotationV1/main/Anno/EPICv2/EPICv2.hg38.manifest.tsv.gz"},
		{MSA, "https://raw.githubusercontent.com/zhou-lab/InfiniumAnnotationV1/main/Anno/MSA/MSA.hg38.manifest.tsv.gz"},
	}
	for _, tt := range tests {
		if got := tt.arrayType.SourceURL(); got != tt.wantURL {
			t.Errorf("%s SourceURL = %q, want %q", tt.arrayType, got, tt.wantURL)
		}
	}
}

// TestArrayTypeCacheFileName verifies the lowercase cache naming scheme.
func TestArrayTypeCacheFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arrayType ArrayType
		want      string
	}{
		{EPICv1, "epicv1_annotation.tsv.gz"},
		{EPICv2, "epicv2_annotation.tsv.gz"},
		{MSA, "msa_annotation.tsv.gz"},
	}
	for _, tt := range tests {
		if got := tt.arrayType.CacheFileName(); got != tt.want {
			t.Errorf("%s CacheFileName = %q, want %q", tt.arrayType, got, tt.want)
		}
	}
}

// TestSupportedArrayTypes verifies the fixed set has exactly three members.
func TestSupportedArrayTypes(t *testing.T) {
	t.Parallel()

	got := SupportedArrayTypes()
	if len(got) != 3 {
		t.Fatalf("expected 3 supported array types, got %d", len(got))
	}
}
