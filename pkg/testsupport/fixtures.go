package testsupport

import (
	"encoding/json"
	"os"
	"reflect"
	"testing"
)

// UpdateGoldenEnv rewrites golden files from the current output when set.
const UpdateGoldenEnv = "SHOWCASE_UPDATE_GOLDEN"

// ReadFixture returns the contents of path, failing t when it cannot be read.
func ReadFixture(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}

// AssertGolden compares the JSON form of got against the golden file at path.
// Both sides are decoded before comparison so key order and spacing in the
// golden file do not matter.
func AssertGolden(t testing.TB, path string, got any) {
	t.Helper()
	encoded, err := json.MarshalIndent(got, "", "  ")
	if err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	if os.Getenv(UpdateGoldenEnv) != "" {
		if err := os.WriteFile(path, append(encoded, '\n'), 0o644); err != nil {
			t.Fatalf("update golden %s: %v", path, err)
		}
		return
	}

	var want, have any
	if err := json.Unmarshal(ReadFixture(t, path), &want); err != nil {
		t.Fatalf("decode golden %s: %v", path, err)
	}
	if err := json.Unmarshal(encoded, &have); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if !reflect.DeepEqual(want, have) {
		t.Fatalf("%s mismatch (set %s=1 to update)\n%s", path, UpdateGoldenEnv, encoded)
	}
}
