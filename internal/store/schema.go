package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS ledgers (
    file_path   TEXT PRIMARY KEY,
    mtime_ns    INTEGER NOT NULL,
    size_bytes  INTEGER NOT NULL,
    row_count   INTEGER NOT NULL,
    parsed_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS ledger_rows (
    file_path    TEXT NOT NULL REFERENCES ledgers(file_path) ON DELETE CASCADE,
    seq          INTEGER NOT NULL,
    account_name TEXT NOT NULL,
    debit        REAL NOT NULL,
    credit       REAL NOT NULL,
    PRIMARY KEY (file_path, seq)
);
`
