// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vault

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/pdiddy/baasify/pkg/types"
)

// fixtureAssets mirrors the demo collection: one bankable construction
// asset and one co-dev textile asset.
func fixtureAssets() []types.Asset {
	return []types.Asset{
		{
			ID:            "ASSET-001",
			Name:          "Myco-Structure High-Load",
			Category:      "Construction",
			GeneratedDate: "2024-11-12",
			TIRScores:     types.TIRScore{Technology: 85, IP: 70, Resources: 90, Market: 65, Composite: 78},
			TRLCurrent:    4,
			TRLTarget:     7,
			RiskProfile:   types.RiskMedium,
			BioAnalogs:    []types.BioAnalog{{Species: "Mycelium", Mechanism: "Hyphal branching", KeyAttribute: "Compressive strength"}},
			Regulatory:    types.Regulatory{Alignment: "EU Green Deal", Standards: []string{"EN 1990"}},
			TokenStatus:   types.TokenBankable,
		},
		{
			ID:            "ASSET-002",
			Name:          "Hydro-Repel Lotus Coating",
			Category:      "Textile",
			GeneratedDate: "2024-12-01",
			TIRScores:     types.TIRScore{Technology: 92, IP: 88, Resources: 60, Market: 95, Composite: 84},
			TRLCurrent:    6,
			TRLTarget:     9,
			RiskProfile:   types.RiskLow,
			BioAnalogs:    []types.BioAnalog{{Species: "Nelumbo nucifera", Mechanism: "Nanoscale wax pillars", KeyAttribute: "Self-cleaning"}},
			Regulatory:    types.Regulatory{Alignment: "REACH Compliant", Standards: []string{"OEKO-TEX"}},
			TokenStatus:   types.TokenCoDev,
		},
	}
}

func newFixtureVault(t *testing.T) *Vault {
	t.Helper()
	v := New()
	for _, a := range fixtureAssets() {
		if err := v.Add(a); err != nil {
			t.Fatalf("Add(%s): %v", a.ID, err)
		}
	}
	return v
}

func TestAddAndList(t *testing.T) {
	v := newFixtureVault(t)

	got := v.List()
	if len(got) != 2 {
		t.Fatalf("List returned %d assets, want 2", len(got))
	}
	if got[0].ID != "ASSET-001" || got[1].ID != "ASSET-002" {
		t.Errorf("insertion order not preserved: %s, %s", got[0].ID, got[1].ID)
	}

	err := v.Add(types.Asset{ID: "ASSET-001"})
	if !errors.Is(err, ErrDuplicateAsset) {
		t.Errorf("duplicate add err = %v, want ErrDuplicateAsset", err)
	}
	if err := v.Add(types.Asset{}); err == nil {
		t.Error("asset without id must be rejected")
	}
}

func TestGet(t *testing.T) {
	v := newFixtureVault(t)

	a, err := v.Get("ASSET-002")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a.Name != "Hydro-Repel Lotus Coating" {
		t.Errorf("name = %q", a.Name)
	}

	if _, err := v.Get("ASSET-404"); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("err = %v, want ErrAssetNotFound", err)
	}
}

func TestAddTask(t *testing.T) {
	v := newFixtureVault(t)

	task, err := v.AddTask("ASSET-001", NewTask{Title: "Compression trial", Assignee: "P. Djukic", DueDate: "2026-09-15", Priority: types.PriorityHigh})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if task.ID != "TASK-001" {
		t.Errorf("task id = %q, want TASK-001", task.ID)
	}
	if task.Status != types.TaskTodo {
		t.Errorf("status = %q, tasks must start as todo", task.Status)
	}

	second, err := v.AddTask("ASSET-001", NewTask{Title: "FTO refresh"})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if second.ID != "TASK-002" {
		t.Errorf("second task id = %q, want TASK-002", second.ID)
	}
	if second.Priority != types.PriorityMedium {
		t.Errorf("priority = %q, want default medium", second.Priority)
	}

	// Ids are scoped per asset, not per vault.
	other, err := v.AddTask("ASSET-002", NewTask{Title: "Coating wash test"})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if other.ID != "TASK-001" {
		t.Errorf("task id on second asset = %q, want TASK-001", other.ID)
	}

	if _, err := v.AddTask("ASSET-404", NewTask{Title: "x"}); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("err = %v, want ErrAssetNotFound", err)
	}
	if _, err := v.AddTask("ASSET-001", NewTask{Title: "x", Priority: "urgent"}); err == nil {
		t.Error("unknown priority must be rejected")
	}
}

func TestUpdateTask(t *testing.T) {
	v := newFixtureVault(t)
	if _, err := v.AddTask("ASSET-001", NewTask{Title: "Compression trial"}); err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	done := types.TaskDone
	title := "Compression trial (v2)"
	updated, err := v.UpdateTask("ASSET-001", "TASK-001", TaskPatch{Status: &done, Title: &title})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Status != types.TaskDone || updated.Title != title {
		t.Errorf("updated task = %+v", updated)
	}
	if updated.Priority != types.PriorityMedium {
		t.Errorf("unpatched field changed: priority = %q", updated.Priority)
	}

	a, _ := v.Get("ASSET-001")
	if a.Tasks[0].Status != types.TaskDone {
		t.Errorf("stored task not updated: %+v", a.Tasks[0])
	}

	if _, err := v.UpdateTask("ASSET-001", "TASK-404", TaskPatch{}); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
	bad := types.TaskStatus("paused")
	if _, err := v.UpdateTask("ASSET-001", "TASK-001", TaskPatch{Status: &bad}); err == nil {
		t.Error("unknown status must be rejected")
	}
	a, _ = v.Get("ASSET-001")
	if a.Tasks[0].Status != types.TaskDone {
		t.Errorf("rejected patch must leave the task untouched: %+v", a.Tasks[0])
	}
}

func TestAttachPassport(t *testing.T) {
	v := newFixtureVault(t)

	first := types.EnvironmentalPassport{ID: "SPP-001", Status: "Verified"}
	if err := v.AttachPassport("ASSET-001", first); err != nil {
		t.Fatalf("AttachPassport: %v", err)
	}
	a, _ := v.Get("ASSET-001")
	if a.Passport == nil || a.Passport.ID != "SPP-001" {
		t.Fatalf("passport not attached: %+v", a.Passport)
	}

	// A second audit replaces the record wholesale.
	second := types.EnvironmentalPassport{ID: "SPP-002", Status: "Provisional"}
	if err := v.AttachPassport("ASSET-001", second); err != nil {
		t.Fatalf("AttachPassport: %v", err)
	}
	a, _ = v.Get("ASSET-001")
	if a.Passport.ID != "SPP-002" || a.Passport.Status != "Provisional" {
		t.Errorf("passport = %+v, want wholesale replacement", a.Passport)
	}

	if err := v.AttachPassport("ASSET-404", first); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("err = %v, want ErrAssetNotFound", err)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	v := newFixtureVault(t)
	if _, err := v.AddTask("ASSET-001", NewTask{Title: "Compression trial", Priority: types.PriorityHigh}); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if err := v.AttachPassport("ASSET-002", types.EnvironmentalPassport{ID: "SPP-002", Status: "Verified"}); err != nil {
		t.Fatalf("AttachPassport: %v", err)
	}

	path := filepath.Join(t.TempDir(), "vault.yaml")
	if err := v.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	got := loaded.List()
	if len(got) != 2 {
		t.Fatalf("loaded %d assets, want 2", len(got))
	}
	a, err := loaded.Get("ASSET-001")
	if err != nil {
		t.Fatalf("Get after load: %v", err)
	}
	if len(a.Tasks) != 1 || a.Tasks[0].ID != "TASK-001" || a.Tasks[0].Priority != types.PriorityHigh {
		t.Errorf("tasks did not round-trip: %+v", a.Tasks)
	}
	b, err := loaded.Get("ASSET-002")
	if err != nil {
		t.Fatalf("Get after load: %v", err)
	}
	if b.Passport == nil || b.Passport.ID != "SPP-002" {
		t.Errorf("passport did not round-trip: %+v", b.Passport)
	}
	if b.TIRScores.Composite != 84 {
		t.Errorf("composite = %d, want 84", b.TIRScores.Composite)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file must be an error")
	}
}
