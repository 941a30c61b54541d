package nicknames

import (
	"path/filepath"
	"testing"
)

func TestRosterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.yaml")

	roster, err := LoadRoster(path)
	if err != nil {
		t.Fatalf("LoadRoster(absent) error = %v", err)
	}
	if len(roster.Characters) != 0 {
		t.Fatalf("absent roster = %+v, want empty", roster)
	}

	added, err := roster.Add("Morgan")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if added.Key == "" || added.Name != "Morgan" {
		t.Fatalf("Add() = %+v", added)
	}
	if err := roster.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := LoadRoster(path)
	if err != nil {
		t.Fatalf("LoadRoster() error = %v", err)
	}
	if len(reloaded.Characters) != 1 || reloaded.Characters[0] != added {
		t.Fatalf("reloaded roster = %+v", reloaded.Characters)
	}
}

func TestRosterAddRejectsEmptyName(t *testing.T) {
	roster := &Roster{}
	if _, err := roster.Add("   "); err == nil {
		t.Fatalf("Add(blank) expected error")
	}
}

func TestRosterFindByKeyThenName(t *testing.T) {
	roster := &Roster{Characters: []Principal{
		{Key: "char-1", Name: "Morgan"},
		{Key: "char-2", Name: "Nyx"},
	}}

	if got, ok := roster.Find("char-2"); !ok || got.Name != "Nyx" {
		t.Fatalf("Find(key) = %+v ok=%v", got, ok)
	}
	if got, ok := roster.Find("morgan"); !ok || got.Key != "char-1" {
		t.Fatalf("Find(name) = %+v ok=%v", got, ok)
	}
	if _, ok := roster.Find("unknown"); ok {
		t.Fatalf("Find(unknown) matched")
	}
}

func TestRosterReKey(t *testing.T) {
	roster := &Roster{Characters: []Principal{{Key: "char-1", Name: "Morgan"}}}

	if !roster.ReKey("char-1", "char-9") {
		t.Fatalf("ReKey() = false, want true")
	}
	if roster.Characters[0].Key != "char-9" {
		t.Fatalf("roster after rekey = %+v", roster.Characters)
	}
	if roster.ReKey("char-1", "char-9") {
		t.Fatalf("ReKey(stale) = true, want false")
	}
	if roster.ReKey("char-9", "char-9") {
		t.Fatalf("ReKey(same) = true, want false")
	}
}
