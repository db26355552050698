// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vault holds the caller's asset collection. It is an in-memory
// working set with file load/save, not a database: assets enter through
// Add, tasks and passports are the only mutations, and nothing is ever
// deleted.
package vault

import (
	"fmt"
	"sync"

	"github.com/pdiddy/baasify/pkg/types"
)

var (
	// ErrAssetNotFound is returned when an asset id is not in the vault.
	ErrAssetNotFound = fmt.Errorf("asset not found")

	// ErrTaskNotFound is returned when a task id is not on the asset.
	ErrTaskNotFound = fmt.Errorf("task not found")

	// ErrDuplicateAsset is returned by Add for an id already in the vault.
	ErrDuplicateAsset = fmt.Errorf("asset already in vault")
)

// Vault is a mutex-guarded asset collection. Assets are stored by value
// and mutated only through the task and passport methods; each update is
// atomic per call.
type Vault struct {
	mu     sync.Mutex
	assets map[string]types.Asset
	order  []string
}

// New returns an empty vault.
func New() *Vault {
	return &Vault{assets: make(map[string]types.Asset)}
}

// Add inserts an asset. The id must be non-empty and not already present.
func (v *Vault) Add(a types.Asset) error {
	if a.ID == "" {
		return fmt.Errorf("asset has no id")
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.assets[a.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAsset, a.ID)
	}
	v.assets[a.ID] = a
	v.order = append(v.order, a.ID)
	return nil
}

// List returns all assets in insertion order.
func (v *Vault) List() []types.Asset {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]types.Asset, 0, len(v.order))
	for _, id := range v.order {
		out = append(out, v.assets[id])
	}
	return out
}

// Get returns the asset with the given id.
func (v *Vault) Get(id string) (types.Asset, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	a, ok := v.assets[id]
	if !ok {
		return types.Asset{}, fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	}
	return a, nil
}

// NewTask carries the caller-supplied fields of a task to be created.
// The id and status are assigned by the vault.
type NewTask struct {
	Title    string
	Assignee string
	DueDate  string
	Priority types.TaskPriority
}

// AddTask creates a task on an asset. The task id is assigned here and is
// unique within the asset; the status always starts at "todo". Returns the
// created task.
func (v *Vault) AddTask(assetID string, nt NewTask) (types.Task, error) {
	priority := nt.Priority
	if priority == "" {
		priority = types.PriorityMedium
	}
	if err := validPriority(priority); err != nil {
		return types.Task{}, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	a, ok := v.assets[assetID]
	if !ok {
		return types.Task{}, fmt.Errorf("%w: %s", ErrAssetNotFound, assetID)
	}

	task := types.Task{
		ID:       nextTaskID(a.Tasks),
		Title:    nt.Title,
		Assignee: nt.Assignee,
		DueDate:  nt.DueDate,
		Status:   types.TaskTodo,
		Priority: priority,
	}
	a.Tasks = append(a.Tasks, task)
	v.assets[assetID] = a
	return task, nil
}

// TaskPatch is a field-level task update. Nil fields are left unchanged.
type TaskPatch struct {
	Title    *string
	Assignee *string
	DueDate  *string
	Status   *types.TaskStatus
	Priority *types.TaskPriority
}

// UpdateTask applies a patch to one task. The patch is validated before
// anything is written, so a rejected update leaves the task untouched.
// Returns the updated task.
func (v *Vault) UpdateTask(assetID, taskID string, patch TaskPatch) (types.Task, error) {
	if patch.Status != nil {
		if err := validStatus(*patch.Status); err != nil {
			return types.Task{}, err
		}
	}
	if patch.Priority != nil {
		if err := validPriority(*patch.Priority); err != nil {
			return types.Task{}, err
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	a, ok := v.assets[assetID]
	if !ok {
		return types.Task{}, fmt.Errorf("%w: %s", ErrAssetNotFound, assetID)
	}
	for i := range a.Tasks {
		if a.Tasks[i].ID != taskID {
			continue
		}
		t := a.Tasks[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Assignee != nil {
			t.Assignee = *patch.Assignee
		}
		if patch.DueDate != nil {
			t.DueDate = *patch.DueDate
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		a.Tasks[i] = t
		v.assets[assetID] = a
		return t, nil
	}
	return types.Task{}, fmt.Errorf("%w: %s on asset %s", ErrTaskNotFound, taskID, assetID)
}

// AttachPassport sets the asset's environmental passport, replacing any
// existing one wholesale.
func (v *Vault) AttachPassport(assetID string, p types.EnvironmentalPassport) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	a, ok := v.assets[assetID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAssetNotFound, assetID)
	}
	a.Passport = &p
	v.assets[assetID] = a
	return nil
}

// nextTaskID assigns the lowest TASK-NNN id not already on the asset.
// Ids are unique within one asset, not across the vault.
func nextTaskID(tasks []types.Task) string {
	used := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		used[t.ID] = true
	}
	for n := 1; ; n++ {
		id := fmt.Sprintf("TASK-%03d", n)
		if !used[id] {
			return id
		}
	}
}

func validStatus(s types.TaskStatus) error {
	switch s {
	case types.TaskTodo, types.TaskInProgress, types.TaskDone:
		return nil
	}
	return fmt.Errorf("invalid task status %q", s)
}

func validPriority(p types.TaskPriority) error {
	switch p {
	case types.PriorityLow, types.PriorityMedium, types.PriorityHigh:
		return nil
	}
	return fmt.Errorf("invalid task priority %q", p)
}
