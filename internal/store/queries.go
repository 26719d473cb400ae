package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// User queries.
const (
	queryCreateUser = `
		INSERT INTO users (name, email, password_hash, created_at, updated_at)
		VALUES (@name, @email, @password_hash, now(), now())
		RETURNING id, created_at, updated_at`

	queryGetUserByEmail = `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1`

	queryGetUserByID = `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1`
)

// Listing queries.
const (
	queryCreateListing = `
		INSERT INTO listings (
			user_id, title, description, price, currency,
			category, condition, images, quantity,
			created_at, updated_at
		) VALUES (
			@user_id, @title, @description, @price, @currency,
			@category, @condition, @images, @quantity,
			now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetListing = `
		SELECT id, user_id, title, COALESCE(description, ''), price, currency,
			COALESCE(category, ''), condition, images, quantity,
			ebay_status, COALESCE(ebay_external_id, ''), COALESCE(ebay_url, ''), COALESCE(ebay_error, ''),
			fb_status, COALESCE(fb_external_id, ''), COALESCE(fb_url, ''), COALESCE(fb_error, ''),
			sold_at, created_at, updated_at
		FROM listings
		WHERE id = $1`

	queryListListings = `
		SELECT id, user_id, title, COALESCE(description, ''), price, currency,
			COALESCE(category, ''), condition, images, quantity,
			ebay_status, COALESCE(ebay_external_id, ''), COALESCE(ebay_url, ''), COALESCE(ebay_error, ''),
			fb_status, COALESCE(fb_external_id, ''), COALESCE(fb_url, ''), COALESCE(fb_error, ''),
			sold_at, created_at, updated_at
		FROM listings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	queryCountListings = `SELECT COUNT(*) FROM listings WHERE user_id = $1`

	queryDeleteListing = `DELETE FROM listings WHERE id = $1`

	// Marking a listing sold closes it on every platform at once. A
	// platform that was never published stays unpublished.
	queryMarkListingSold = `
		UPDATE listings SET
			sold_at = $2,
			ebay_status = CASE WHEN ebay_status = 'active' THEN 'sold' ELSE ebay_status END,
			fb_status   = CASE WHEN fb_status   = 'active' THEN 'sold' ELSE fb_status   END,
			updated_at = now()
		WHERE id = $1`
)

// Per-platform status queries. The %s placeholder is the platform's
// column prefix (ebay or fb); see platformPrefix. Both updates carry a
// status guard so a slow publish attempt that lands after the listing
// moved on can never downgrade it.
const (
	queryMarkPlatformActiveTpl = `
		UPDATE listings SET
			%[1]s_status = 'active',
			%[1]s_external_id = $2,
			%[1]s_url = $3,
			%[1]s_error = NULL,
			updated_at = now()
		WHERE id = $1 AND %[1]s_status NOT IN ('active', 'sold')`

	queryMarkPlatformErrorTpl = `
		UPDATE listings SET
			%[1]s_status = 'error',
			%[1]s_error = $2,
			updated_at = now()
		WHERE id = $1 AND %[1]s_status NOT IN ('active', 'sold')`
)

// Credential queries.
const (
	queryUpsertCredential = `
		INSERT INTO credentials (
			user_id, platform, access_token, refresh_token, expires_at,
			created_at, updated_at
		) VALUES (
			@user_id, @platform, @access_token, @refresh_token, @expires_at,
			now(), now()
		)
		ON CONFLICT (user_id, platform) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryGetCredential = `
		SELECT id, user_id, platform, access_token, COALESCE(refresh_token, ''),
			expires_at, created_at, updated_at
		FROM credentials
		WHERE user_id = $1 AND platform = $2`

	queryListCredentials = `
		SELECT id, user_id, platform, access_token, COALESCE(refresh_token, ''),
			expires_at, created_at, updated_at
		FROM credentials
		WHERE user_id = $1
		ORDER BY platform`

	queryListExpiringCredentials = `
		SELECT id, user_id, platform, access_token, COALESCE(refresh_token, ''),
			expires_at, created_at, updated_at
		FROM credentials
		WHERE expires_at IS NOT NULL
		  AND expires_at < $1
		  AND refresh_token IS NOT NULL AND refresh_token <> ''
		ORDER BY expires_at`
)
