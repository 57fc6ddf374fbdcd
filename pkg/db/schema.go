package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs table: one row per pipeline invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

    url TEXT NOT NULL,            -- encoded URL actually navigated to
    engine TEXT NOT NULL,         -- browser | http | cache
    language TEXT,                -- detected or forced summary language
    status TEXT NOT NULL,         -- success | failed
    error_type TEXT,              -- invalid_url, driver_error, network_error,
                                  -- fetch_timeout, empty_content,
                                  -- summarization_failed, empty_response
    error_message TEXT,

    word_count INTEGER DEFAULT 0, -- normalized input words sent to the model
    summary TEXT,
    output_path TEXT,             -- empty when printed to stdout
    duration_ms INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_url ON runs(url);
CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
