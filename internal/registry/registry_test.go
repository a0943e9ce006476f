package registry

import (
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/angry-pixel/internal/core"
	"github.com/vovakirdan/angry-pixel/internal/game"
)

type fakeDisplay struct {
	id string
}

func (d fakeDisplay) ID() string    { return d.id }
func (d fakeDisplay) Title() string { return "Fake " + d.id }

func (fakeDisplay) Run(*game.Session, core.RuntimeConfig, *log.Logger) error { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test-b", func() Display { return fakeDisplay{id: "zz-test-b"} })
	Register("zz-test-a", func() Display { return fakeDisplay{id: "zz-test-a"} })

	if !Exists("zz-test-a") {
		t.Fatal("registered display not found")
	}
	if Exists("zz-missing") {
		t.Error("unregistered display reported as existing")
	}

	d, err := Create("zz-test-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.ID() != "zz-test-a" {
		t.Errorf("ID() = %q", d.ID())
	}

	if _, err := Create("zz-missing"); err == nil {
		t.Error("expected error for unknown display")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	var found bool
	for _, info := range list {
		if info.ID == "zz-test-b" {
			found = true
			if info.Title != "Fake zz-test-b" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("zz-test-b missing from List")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Display { return fakeDisplay{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz-dup", func() Display { return fakeDisplay{id: "zz-dup"} })
}
