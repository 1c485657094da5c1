package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createBusinessProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE business_profiles (
		id TEXT PRIMARY KEY,
		business_name TEXT NOT NULL,
		business_address TEXT,
		business_type TEXT,
		business_phone_number TEXT,
		owner_first_name TEXT,
		owner_last_name TEXT,
		owner_email TEXT,
		owner_phone TEXT,
		bir_registration_url TEXT,
		business_certificate_url TEXT,
		mayors_permit_url TEXT,
		cover_photo_url TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		rejection_reason TEXT,
		rejection_notes TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createUserProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE user_profiles (
		id TEXT PRIMARY KEY,
		first_name TEXT,
		last_name TEXT,
		username TEXT,
		email TEXT,
		mobile_number TEXT,
		verified_status TEXT,
		profile_image_url TEXT,
		fcm_token TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createFeedbackTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE feedback (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		business_id TEXT,
		rating INTEGER NOT NULL,
		comment TEXT,
		feedback_type TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createQRScanTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE qr_scans (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		business_id TEXT,
		created_at DATETIME
	);`)
}

func createAdminTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE admins (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT,
		phone_number TEXT,
		password_hash TEXT NOT NULL,
		avatar_url TEXT,
		preferences TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
