// CLI integration tests for shelf.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain builds the shelf binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "shelf-test-*")
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "shelf")
	SetShelfBin(binPath)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/shelf")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		SetBuildErr(&BuildError{
			Err:    err,
			Output: string(output),
		})
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)

	os.Exit(code)
}

// TestInit verifies shelf initialization creates the data directory
// and the sqlite database file.
func TestInit(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunShelf("init")
	if result.Stdout == "" {
		t.Error("expected init output message")
	}

	if _, err := os.Stat(env.DataDir); os.IsNotExist(err) {
		t.Error("data directory not created")
	}

	dbFile := filepath.Join(env.DataDir, "shelf.db")
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		t.Error("shelf.db not created")
	}
}

// TestCreateAndShow verifies resource creation and retrieval for all
// three kinds.
func TestCreateAndShow(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunShelf("init")

	for _, kind := range []string{"collection", "object", "file"} {
		id := env.MustCreate(kind)

		result := env.MustRunShelf("show", id)
		if !strings.Contains(result.Stdout, id) {
			t.Errorf("show %s output missing id: %s", kind, result.Stdout)
		}
		if !strings.Contains(result.Stdout, kind) {
			t.Errorf("show %s output missing kind: %s", kind, result.Stdout)
		}
	}
}

// TestCreateUnknownKind verifies an unrecognized kind exits with a
// user error.
func TestCreateUnknownKind(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunShelf("init")

	result := env.RunShelf("create", "--kind", "shoebox")
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1 for unknown kind, got %d", result.ExitCode)
	}
}

// TestTag verifies type tagging and its idempotence.
func TestTag(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunShelf("init")

	id := env.MustCreate("file")
	env.MustRunShelf("tag", id, "image/tiff")
	result := env.MustRunShelf("tag", id, "image/tiff")

	if strings.Count(result.Stdout, "image/tiff") != 1 {
		t.Errorf("tag not idempotent: %s", result.Stdout)
	}
}

// TestMembership verifies add-member, members order, remove-member,
// and parents.
func TestMembership(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunShelf("init")

	col := env.MustCreate("collection")
	obj1 := env.MustCreate("object")
	obj2 := env.MustCreate("object")
	obj3 := env.MustCreate("object")

	env.MustRunShelf("add-member", col, obj1)
	env.MustRunShelf("add-member", col, obj2)
	env.MustRunShelf("add-member", col, obj3)

	result := env.MustRunShelf("members", col)
	members := Lines(result.Stdout)
	if len(members) != 3 || members[0] != obj1 || members[1] != obj2 || members[2] != obj3 {
		t.Errorf("members out of order: got %v, want [%s %s %s]", members, obj1, obj2, obj3)
	}

	// Removing the middle member preserves the order of the rest.
	env.MustRunShelf("remove-member", col, obj2)
	result = env.MustRunShelf("members", col)
	members = Lines(result.Stdout)
	if len(members) != 2 || members[0] != obj1 || members[1] != obj3 {
		t.Errorf("members after removal: got %v, want [%s %s]", members, obj1, obj3)
	}

	result = env.MustRunShelf("parents", obj1)
	parents := Lines(result.Stdout)
	if len(parents) != 1 || parents[0] != col {
		t.Errorf("parents: got %v, want [%s]", parents, col)
	}
}

// TestMembershipRules verifies kind-based edge rejection with a user
// error exit code.
func TestMembershipRules(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunShelf("init")

	col := env.MustCreate("collection")
	obj := env.MustCreate("object")
	file := env.MustCreate("file")

	// A collection never holds a file directly.
	result := env.RunShelf("add-member", col, file)
	if result.ExitCode != 1 {
		t.Errorf("add-member collection<-file: expected exit 1, got %d", result.ExitCode)
	}

	// An object never holds a collection.
	result = env.RunShelf("add-member", obj, col)
	if result.ExitCode != 1 {
		t.Errorf("add-member object<-collection: expected exit 1, got %d", result.ExitCode)
	}

	// Files have no members at all.
	result = env.RunShelf("add-member", file, obj)
	if result.ExitCode != 1 {
		t.Errorf("add-member on file: expected exit 1, got %d", result.ExitCode)
	}
}

// TestCycleRejection verifies that closing a containment loop is
// rejected and leaves the graph unchanged.
func TestCycleRejection(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunShelf("init")

	a := env.MustCreate("object")
	b := env.MustCreate("object")
	c := env.MustCreate("object")

	env.MustRunShelf("add-member", a, b)
	env.MustRunShelf("add-member", b, c)

	// c -> a would close the loop.
	result := env.RunShelf("add-member", c, a)
	if result.ExitCode != 1 {
		t.Errorf("cycle edge: expected exit 1, got %d", result.ExitCode)
	}

	// Self-membership is the one-node cycle.
	result = env.RunShelf("add-member", a, a)
	if result.ExitCode != 1 {
		t.Errorf("self edge: expected exit 1, got %d", result.ExitCode)
	}

	members := Lines(env.MustRunShelf("members", c).Stdout)
	if len(members) != 0 {
		t.Errorf("rejected edge was written: %v", members)
	}
}

// TestRelatedAndCollections verifies the proxied relations between
// objects and collections.
func TestRelatedAndCollections(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunShelf("init")

	obj := env.MustCreate("object")
	other := env.MustCreate("object")
	col := env.MustCreate("collection")

	env.MustRunShelf("add-related", obj, other)
	related := Lines(env.MustRunShelf("related", obj).Stdout)
	if len(related) != 1 || related[0] != other {
		t.Errorf("related: got %v, want [%s]", related, other)
	}

	env.MustRunShelf("add-to-collection", obj, col)
	collections := Lines(env.MustRunShelf("collections-of", obj).Stdout)
	if len(collections) != 1 || collections[0] != col {
		t.Errorf("collections-of: got %v, want [%s]", collections, col)
	}

	// A related object is not a member.
	members := Lines(env.MustRunShelf("members", obj).Stdout)
	if len(members) != 0 {
		t.Errorf("related object leaked into members: %v", members)
	}
}

// TestFiles verifies file attachment, type filtering, and the
// find-or-create behavior of attach-file --type.
func TestFiles(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunShelf("init")

	obj := env.MustCreate("object")

	plain := strings.TrimSpace(env.MustRunShelf("attach-file", obj).Stdout)
	thumb := strings.TrimSpace(env.MustRunShelf("attach-file", obj, "--type", "pcdmuse:ThumbnailImage").Stdout)

	files := Lines(env.MustRunShelf("files", obj).Stdout)
	if len(files) != 2 {
		t.Fatalf("files: got %v, want 2 entries", files)
	}
	seen := map[string]bool{files[0]: true, files[1]: true}
	if !seen[plain] || !seen[thumb] {
		t.Errorf("files: got %v, want %s and %s", files, plain, thumb)
	}

	filtered := Lines(env.MustRunShelf("files", obj, "--type", "pcdmuse:ThumbnailImage").Stdout)
	if len(filtered) != 1 || filtered[0] != thumb {
		t.Errorf("files --type: got %v, want [%s]", filtered, thumb)
	}

	// attach-file --type reuses the existing file of that type.
	again := strings.TrimSpace(env.MustRunShelf("attach-file", obj, "--type", "pcdmuse:ThumbnailImage").Stdout)
	if again != thumb {
		t.Errorf("attach-file --type created a duplicate: %s != %s", again, thumb)
	}
}

// TestPersistence verifies that the graph survives separate CLI
// invocations against the same data directory.
func TestPersistence(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunShelf("init")

	col := env.MustCreate("collection")
	obj := env.MustCreate("object")
	env.MustRunShelf("add-member", col, obj)

	// Every command attaches and detaches its own store, so this list
	// reads back what the previous process wrote.
	members := Lines(env.MustRunShelf("members", col).Stdout)
	if len(members) != 1 || members[0] != obj {
		t.Errorf("persisted members: got %v, want [%s]", members, obj)
	}
}
