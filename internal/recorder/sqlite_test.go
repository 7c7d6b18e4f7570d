package recorder

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRecorder_RecordPost(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "posts.db")
	r, err := NewSQLiteRecorder(dbPath)
	require.NoError(t, err)
	defer r.Close()

	err = r.RecordPost(&PostRecord{
		AttemptID:    "a1b2c3",
		Day:          7,
		Variant:      "BELOW_TARGET",
		Mcap:         800_000_000,
		PriceUSD:     0.0008,
		LiquidityUSD: 3_000_000,
		PostID:       "1846000000000000001",
		Message:      "Day 7 of posting pigeon under 941M mcap",
	})
	require.NoError(t, err)

	var count int
	var day int
	var variant, postID string
	row := r.db.QueryRow(`SELECT COUNT(*), day, variant, post_id FROM posts`)
	require.NoError(t, row.Scan(&count, &day, &variant, &postID))
	assert.Equal(t, 1, count)
	assert.Equal(t, 7, day)
	assert.Equal(t, "BELOW_TARGET", variant)
	assert.Equal(t, "1846000000000000001", postID)
}

func TestSQLiteRecorder_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "posts.db")

	r, err := NewSQLiteRecorder(dbPath)
	require.NoError(t, err)
	require.NoError(t, r.RecordPost(&PostRecord{Day: 1, Variant: "FALLBACK", Fallback: true}))
	require.NoError(t, r.Close())

	// Migrations must be idempotent across restarts.
	r2, err := NewSQLiteRecorder(dbPath)
	require.NoError(t, err)
	defer r2.Close()

	var count int
	require.NoError(t, r2.db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&count))
	assert.Equal(t, 1, count)
}
