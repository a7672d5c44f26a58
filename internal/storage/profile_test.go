package storage

import (
	"errors"
	"testing"
)

func TestProfileUnknownOwner(t *testing.T) {
	store := openTestStore(t)
	p, err := store.Profile("ghost")
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}
	if p.Owner != "ghost" || p.Coins != 0 || p.ActiveSkin != "" || len(p.Unlocked) != 0 {
		t.Errorf("Profile() = %+v, want empty", p)
	}
}

func TestAddCoins(t *testing.T) {
	store := openTestStore(t)
	if n, err := store.AddCoins("alice", 5); err != nil || n != 5 {
		t.Fatalf("AddCoins() = %d, %v", n, err)
	}
	if n, err := store.AddCoins("alice", 3); err != nil || n != 8 {
		t.Fatalf("AddCoins() = %d, %v", n, err)
	}
}

func TestUnlockSkin(t *testing.T) {
	store := openTestStore(t)
	store.AddCoins("alice", 150)

	err := store.UnlockSkin("alice", "lime", 250)
	if !errors.Is(err, ErrInsufficientCoins) {
		t.Fatalf("UnlockSkin() err = %v, want ErrInsufficientCoins", err)
	}

	if err := store.UnlockSkin("alice", "pink", 100); err != nil {
		t.Fatalf("UnlockSkin() failed: %v", err)
	}
	p, _ := store.Profile("alice")
	if p.Coins != 50 || !p.HasSkin("pink") {
		t.Errorf("after purchase: %+v", p)
	}

	// Buying again is free.
	if err := store.UnlockSkin("alice", "pink", 100); err != nil {
		t.Fatalf("second UnlockSkin() failed: %v", err)
	}
	p, _ = store.Profile("alice")
	if p.Coins != 50 {
		t.Errorf("repeat purchase charged the wallet: %d", p.Coins)
	}

	if err := store.UnlockSkin("alice", "cyan", 0); err != nil {
		t.Fatalf("free UnlockSkin() failed: %v", err)
	}
	p, _ = store.Profile("alice")
	if want := []string{"cyan", "pink"}; len(p.Unlocked) != 2 || p.Unlocked[0] != want[0] || p.Unlocked[1] != want[1] {
		t.Errorf("Unlocked = %v, want %v", p.Unlocked, want)
	}
}

func TestEquipSkin(t *testing.T) {
	store := openTestStore(t)

	err := store.EquipSkin("alice", "red", 1000)
	if !errors.Is(err, ErrSkinLocked) {
		t.Fatalf("EquipSkin() err = %v, want ErrSkinLocked", err)
	}

	if err := store.EquipSkin("alice", "cyan", 0); err != nil {
		t.Fatalf("EquipSkin(free) failed: %v", err)
	}
	p, _ := store.Profile("alice")
	if p.ActiveSkin != "cyan" {
		t.Errorf("ActiveSkin = %q, want cyan", p.ActiveSkin)
	}

	store.AddCoins("alice", 1000)
	if err := store.UnlockSkin("alice", "red", 1000); err != nil {
		t.Fatalf("UnlockSkin() failed: %v", err)
	}
	if err := store.EquipSkin("alice", "red", 1000); err != nil {
		t.Fatalf("EquipSkin() failed: %v", err)
	}
	p, _ = store.Profile("alice")
	if p.ActiveSkin != "red" || p.Coins != 0 {
		t.Errorf("profile = %+v", p)
	}
}
