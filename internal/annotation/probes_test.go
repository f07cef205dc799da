package annotation

import (
	"path/filepath"
	"reflect"
	"testing"
)

// TestReadProbeList tests probe list parsing.
func TestReadProbeList(t *testing.T) {
	t.Parallel()

	t.Run("preserves order and skips blank lines", func(t *testing.T) {
		t.Parallel()

		content := "cg00000029\n\ncg00000108\n   \n\tcg00000165\t\n"
		ids, err := ReadProbeList(writeTSV(t, "probes.txt", content))
		if err != nil {
			t.Fatalf("ReadProbeList returned error: %v", err)
		}

		want := []string{"cg00000029", "cg00000108", "cg00000165"}
		if !reflect.DeepEqual(ids, want) {
			t.Errorf("ids = %v, want %v", ids, want)
		}
	})

	t.Run("empty file yields no IDs without error", func(t *testing.T) {
		t.Parallel()

		ids, err := ReadProbeList(writeTSV(t, "empty.txt", "\n\n"))
		if err != nil {
			t.Fatalf("ReadProbeList returned error: %v", err)
		}
		if len(ids) != 0 {
			t.Errorf("expected no IDs, got %v", ids)
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		t.Parallel()

		if _, err := ReadProbeList(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
