package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"slices"
)

// Profile is a player's persistent state.
type Profile struct {
	Owner      string
	Coins      int
	ActiveSkin string
	Unlocked   []string // skin IDs, sorted
}

// HasSkin reports whether the skin was unlocked.
func (p Profile) HasSkin(id string) bool {
	return slices.Contains(p.Unlocked, id)
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Profile loads an owner's profile. Unknown owners get an empty profile.
func (s *Store) Profile(owner string) (Profile, error) {
	p := Profile{Owner: owner}

	err := s.db.QueryRow(
		"SELECT coins, active_skin FROM profiles WHERE owner = ?", owner,
	).Scan(&p.Coins, &p.ActiveSkin)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Profile{}, fmt.Errorf("storage: cannot query profile: %w", err)
	}

	rows, err := s.db.Query(
		"SELECT skin_id FROM unlocked_skins WHERE owner = ? ORDER BY skin_id", owner,
	)
	if err != nil {
		return Profile{}, fmt.Errorf("storage: cannot query skins: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return Profile{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.Unlocked = append(p.Unlocked, id)
	}
	if err := rows.Err(); err != nil {
		return Profile{}, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return p, nil
}

// AddCoins credits n coins to the owner's wallet and returns the new balance.
func (s *Store) AddCoins(owner string, n int) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := addCoins(tx, owner, n); err != nil {
		return 0, err
	}
	balance, err := coins(tx, owner)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit coins: %w", err)
	}
	return balance, nil
}

// UnlockSkin buys a skin for price coins. Buying an owned skin is a no-op
// and costs nothing; free skins unlock without touching the wallet.
func (s *Store) UnlockSkin(owner, skinID string, price int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	owned, err := hasSkin(tx, owner, skinID)
	if err != nil {
		return err
	}
	if owned {
		return nil
	}

	if price > 0 {
		balance, err := coins(tx, owner)
		if err != nil {
			return err
		}
		if balance < price {
			return fmt.Errorf("%w: %s costs %d, wallet holds %d", ErrInsufficientCoins, skinID, price, balance)
		}
		if err := addCoins(tx, owner, -price); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO unlocked_skins (owner, skin_id) VALUES (?, ?)", owner, skinID,
	); err != nil {
		return fmt.Errorf("storage: cannot unlock skin: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit unlock: %w", err)
	}
	return nil
}

// EquipSkin makes a skin active. Skins with a price must be unlocked first.
func (s *Store) EquipSkin(owner, skinID string, price int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if price > 0 {
		owned, err := hasSkin(tx, owner, skinID)
		if err != nil {
			return err
		}
		if !owned {
			return fmt.Errorf("%w: %s", ErrSkinLocked, skinID)
		}
	}

	if err := ensureProfile(tx, owner); err != nil {
		return err
	}
	if _, err := tx.Exec(
		"UPDATE profiles SET active_skin = ?, updated_at = CURRENT_TIMESTAMP WHERE owner = ?", skinID, owner,
	); err != nil {
		return fmt.Errorf("storage: cannot equip skin: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit equip: %w", err)
	}
	return nil
}

func ensureProfile(ex execer, owner string) error {
	_, err := ex.Exec("INSERT INTO profiles (owner) VALUES (?) ON CONFLICT(owner) DO NOTHING", owner)
	if err != nil {
		return fmt.Errorf("storage: cannot create profile: %w", err)
	}
	return nil
}

func addCoins(ex execer, owner string, n int) error {
	if err := ensureProfile(ex, owner); err != nil {
		return err
	}
	_, err := ex.Exec(
		"UPDATE profiles SET coins = coins + ?, updated_at = CURRENT_TIMESTAMP WHERE owner = ?", n, owner,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update coins: %w", err)
	}
	return nil
}

func coins(ex execer, owner string) (int, error) {
	var n int
	err := ex.QueryRow("SELECT coins FROM profiles WHERE owner = ?", owner).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query coins: %w", err)
	}
	return n, nil
}

func hasSkin(ex execer, owner, skinID string) (bool, error) {
	var n int
	err := ex.QueryRow(
		"SELECT COUNT(*) FROM unlocked_skins WHERE owner = ? AND skin_id = ?", owner, skinID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query skins: %w", err)
	}
	return n > 0, nil
}
