package postgres

// schema применяется при старте, все операторы идемпотентны
var schema = []string{
	`CREATE TABLE IF NOT EXISTS offers (
		slug       TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		url        TEXT NOT NULL,
		active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		identifier TEXT PRIMARY KEY,
		first_seen TIMESTAMPTZ NOT NULL,
		last_seen  TIMESTAMPTZ NOT NULL,
		blocked    BOOLEAN NOT NULL DEFAULT FALSE,
		blocked_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS clicks (
		id         BIGSERIAL PRIMARY KEY,
		ts         TIMESTAMPTZ NOT NULL,
		day        DATE NOT NULL,
		offer_slug TEXT NOT NULL REFERENCES offers (slug) ON DELETE RESTRICT,
		country    CHAR(2) NOT NULL CHECK (country IN ('RU', 'KZ')),
		user_ref   TEXT REFERENCES users (identifier)
	)`,

	// один засчитанный клик на (оффер, пользователь, день); анонимные клики не ограничены
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_clicks_offer_user_day
		ON clicks (offer_slug, user_ref, day)
		WHERE user_ref IS NOT NULL`,

	`CREATE INDEX IF NOT EXISTS idx_clicks_day ON clicks (day)`,

	`CREATE TABLE IF NOT EXISTS deliveries (
		id       BIGSERIAL PRIMARY KEY,
		ts       TIMESTAMPTZ NOT NULL,
		user_ref TEXT NOT NULL REFERENCES users (identifier),
		event    TEXT NOT NULL CHECK (event IN ('ok', 'blocked', 'chat_not_found', 'other')),
		context  TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS short_links (
		id         VARCHAR(16) PRIMARY KEY,
		offer_slug TEXT NOT NULL REFERENCES offers (slug) ON DELETE RESTRICT,
		country    CHAR(2) NOT NULL CHECK (country IN ('RU', 'KZ')),
		user_ref   TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE OR REPLACE VIEW v_clicks_by_offer_day AS
		SELECT day, offer_slug, COUNT(*) AS clicks
		FROM clicks
		GROUP BY day, offer_slug`,

	`CREATE OR REPLACE VIEW v_clicks_total_day AS
		SELECT day, COUNT(*) AS clicks
		FROM clicks
		GROUP BY day`,
}
