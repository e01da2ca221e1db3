package db

import "context"

// Schema is applied on startup. The unique indexes carry invariants
// the handlers rely on: one websites row per URL, one ledger entry
// per (review, user), one report per (review, reporter).
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    email         TEXT,
    password_hash TEXT,
    role          TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin')),
    auth_provider TEXT NOT NULL DEFAULT 'local',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS websites (
    id          UUID PRIMARY KEY,
    name        TEXT NOT NULL,
    url         TEXT NOT NULL UNIQUE,
    image_url   TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS reviews (
    id                UUID PRIMARY KEY,
    user_id           UUID NOT NULL REFERENCES users(id),
    website_id        UUID NOT NULL REFERENCES websites(id),
    score             INT NOT NULL CHECK (score >= 0 AND score <= 100),
    assessment        TEXT NOT NULL,
    criteria_checked  TEXT[] NOT NULL DEFAULT '{}',
    wave_errors       INT NOT NULL DEFAULT 0,
    wave_alerts       INT NOT NULL DEFAULT 0,
    wave_features     INT NOT NULL DEFAULT 0,
    wave_structural   INT NOT NULL DEFAULT 0,
    wave_aria         INT NOT NULL DEFAULT 0,
    wave_raw          JSONB NOT NULL DEFAULT '{}',
    wave_evaluated_at TIMESTAMPTZ,
    upvotes           INT NOT NULL DEFAULT 0,
    downvotes         INT NOT NULL DEFAULT 0,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_reviews_website ON reviews (website_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_reviews_popular ON reviews ((upvotes - downvotes) DESC, created_at DESC);

CREATE TABLE IF NOT EXISTS review_votes (
    review_id  UUID NOT NULL REFERENCES reviews(id) ON DELETE CASCADE,
    user_id    UUID NOT NULL REFERENCES users(id),
    vote       TEXT NOT NULL CHECK (vote IN ('up', 'down')),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (review_id, user_id)
);

CREATE TABLE IF NOT EXISTS reports (
    id             UUID PRIMARY KEY,
    review_id      UUID REFERENCES reviews(id) ON DELETE SET NULL,
    reporter_id    UUID NOT NULL REFERENCES users(id),
    reason         TEXT NOT NULL CHECK (reason IN ('inappropriate', 'incorrect', 'spam', 'other')),
    comment        TEXT NOT NULL DEFAULT '',
    status         TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'reviewed', 'resolved', 'dismissed')),
    reviewed_by    UUID REFERENCES users(id),
    review_comment TEXT NOT NULL DEFAULT '',
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (review_id, reporter_id)
);

CREATE INDEX IF NOT EXISTS idx_reports_status ON reports (status, created_at DESC);
`

// InitSchema creates all tables and indexes if they do not exist.
func (db *DB) InitSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, schema)
	return err
}
