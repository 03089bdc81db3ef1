// ABOUTME: SQLite schema for the check-in engine
// ABOUTME: Creates all tables and indexes for local storage
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Intention sets (groups a check-in reports against)
CREATE TABLE IF NOT EXISTS intention_sets (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Intentions (user-defined trackable goals)
CREATE TABLE IF NOT EXISTS intentions (
    id TEXT PRIMARY KEY,
    set_id TEXT NOT NULL REFERENCES intention_sets(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    target REAL NOT NULL DEFAULT 0,
    unit TEXT,
    timeframe TEXT NOT NULL DEFAULT 'daily',
    active INTEGER NOT NULL DEFAULT 1,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Check-ins (one per recording session)
CREATE TABLE IF NOT EXISTS check_ins (
    id TEXT PRIMARY KEY,
    set_id TEXT,
    transcript TEXT NOT NULL,
    audio_ref TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Progress entries (append-only ledger; rows are never updated or deleted)
CREATE TABLE IF NOT EXISTS progress_entries (
    id TEXT PRIMARY KEY,
    date_key TEXT NOT NULL,
    intention_id TEXT NOT NULL,
    set_id TEXT,
    type TEXT NOT NULL,
    amount REAL NOT NULL,
    unit TEXT,
    confidence REAL DEFAULT 1.0,
    evidence TEXT,
    check_in_id TEXT,
    occurred_at DATETIME NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Extracted items (immutable after canonicalization except review_state)
CREATE TABLE IF NOT EXISTS extracted_items (
    id TEXT PRIMARY KEY,
    check_in_id TEXT,
    type TEXT NOT NULL,
    title TEXT NOT NULL,
    summary TEXT,
    categories TEXT,
    confidence REAL DEFAULT 0,
    strength REAL DEFAULT 0.4,
    quote TEXT,
    context_before TEXT,
    context_after TEXT,
    fingerprint TEXT NOT NULL,
    calendar TEXT,
    review_state TEXT NOT NULL DEFAULT 'pending',
    extracted_at DATETIME NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Topic aggregates (created on first occurrence, merged into, never deleted)
CREATE TABLE IF NOT EXISTS topics (
    topic_key TEXT PRIMARY KEY,
    display_title TEXT NOT NULL,
    primary_category TEXT,
    categories TEXT,
    occurrences INTEGER NOT NULL DEFAULT 1,
    item_ids TEXT,
    fingerprints TEXT,
    first_seen DATETIME,
    last_seen DATETIME
);

-- Mood samples (at most one per check-in)
CREATE TABLE IF NOT EXISTS moods (
    id TEXT PRIMARY KEY,
    check_in_id TEXT,
    date_key TEXT NOT NULL,
    valence REAL NOT NULL,
    label TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Indexes for efficient querying
CREATE INDEX IF NOT EXISTS idx_intentions_set ON intentions(set_id);
CREATE INDEX IF NOT EXISTS idx_entries_date ON progress_entries(date_key);
CREATE INDEX IF NOT EXISTS idx_entries_intention ON progress_entries(intention_id, date_key);
CREATE INDEX IF NOT EXISTS idx_checkins_created ON check_ins(created_at);
CREATE INDEX IF NOT EXISTS idx_items_fingerprint ON extracted_items(fingerprint);
CREATE INDEX IF NOT EXISTS idx_items_review ON extracted_items(review_state);
CREATE INDEX IF NOT EXISTS idx_moods_date ON moods(date_key);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
