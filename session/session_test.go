package session

import (
	"testing"

	"github.com/PumbaSquek/chiedimi-tutto-subito/auth"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	identity := auth.Identity{UserID: "u1", Username: "chef1"}

	if _, ok := m.Get("u1"); ok {
		t.Fatal("session exists before Create")
	}

	sess := m.Create(identity)
	if sess.Workspace == nil || len(sess.Workspace.Catalog.Categories) == 0 {
		t.Fatal("fresh session has no seeded workspace")
	}

	got, ok := m.Get("u1")
	if !ok || got != sess {
		t.Fatal("Get did not return the created session")
	}

	// A later sign-in replaces the previous session wholesale.
	replacement := m.Create(identity)
	if got, _ := m.Get("u1"); got != replacement {
		t.Error("Create did not replace the old session")
	}

	m.Destroy("u1")
	if _, ok := m.Get("u1"); ok {
		t.Error("session survives Destroy")
	}
}

func TestBeginSaveBlocksSecondSave(t *testing.T) {
	m := NewManager()
	sess := m.Create(auth.Identity{UserID: "u1", Username: "chef1"})

	if !sess.BeginSave() {
		t.Fatal("first BeginSave refused")
	}
	if sess.BeginSave() {
		t.Error("second BeginSave allowed while one is outstanding")
	}

	// Draft mutation is not blocked while a save is in flight.
	if _, ok := sess.Workspace.AddToMenu("bruschetta"); !ok {
		t.Error("draft mutation blocked during save")
	}

	sess.EndSave()
	if !sess.BeginSave() {
		t.Error("BeginSave refused after EndSave")
	}
	sess.EndSave()
}
