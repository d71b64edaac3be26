package services

import (
	"testing"

	"prospect/internal/models"
	"prospect/internal/testutil"
)

func newTestUserService(t *testing.T) (UserServicer, func()) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := NewUserService(db, NewAssetClassService(db), NewHoldingTypeService(db))
	return svc, func() { testutil.TeardownTestDB(t, db) }
}

func TestCreateUser(t *testing.T) {
	svc, teardown := newTestUserService(t)
	defer teardown()

	t.Run("success_seeds_reference_data", func(t *testing.T) {
		user, err := svc.CreateUser("alice@example.com", "s3cret-pass", "Alice", "Nguyen", models.UserModeBasic)
		testutil.AssertNoError(t, err)
		if user.Email != "alice@example.com" {
			t.Errorf("email = %q", user.Email)
		}
		if user.Password == "s3cret-pass" {
			t.Error("password should be stored hashed")
		}
		if user.Mode != models.UserModeBasic {
			t.Errorf("mode = %s, want basic", user.Mode)
		}
	})

	t.Run("email_is_normalized", func(t *testing.T) {
		user, err := svc.CreateUser("Bob@Example.COM", "s3cret-pass", "Bob", "", models.UserModeAdvanced)
		testutil.AssertNoError(t, err)
		if user.Email != "bob@example.com" {
			t.Errorf("email = %q, want lowercase", user.Email)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		_, err := svc.CreateUser("alice@example.com", "another-pass", "", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_fields", func(t *testing.T) {
		_, err := svc.CreateUser("", "pass", "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		_, err = svc.CreateUser("x@example.com", "", "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("empty_mode_defaults_to_basic", func(t *testing.T) {
		user, err := svc.CreateUser("carol@example.com", "s3cret-pass", "", "", "")
		testutil.AssertNoError(t, err)
		if user.Mode != models.UserModeBasic {
			t.Errorf("mode = %s, want basic", user.Mode)
		}
	})
}

func TestAttemptLogin(t *testing.T) {
	svc, teardown := newTestUserService(t)
	defer teardown()

	_, err := svc.CreateUser("dave@example.com", "correct-horse", "Dave", "", models.UserModeBasic)
	testutil.AssertNoError(t, err)

	t.Run("success", func(t *testing.T) {
		user, err := svc.AttemptLogin("dave@example.com", "correct-horse")
		testutil.AssertNoError(t, err)
		if user.LastLoginAt == nil {
			t.Error("last login timestamp should be set")
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := svc.AttemptLogin("dave@example.com", "wrong")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_email_looks_like_bad_credentials", func(t *testing.T) {
		_, err := svc.AttemptLogin("nobody@example.com", "whatever")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("lockout_after_repeated_failures", func(t *testing.T) {
		_, err := svc.CreateUser("eve@example.com", "correct-horse", "", "", "")
		testutil.AssertNoError(t, err)

		for i := 0; i < 5; i++ {
			_, err := svc.AttemptLogin("eve@example.com", "wrong")
			testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
		}

		_, err = svc.AttemptLogin("eve@example.com", "correct-horse")
		testutil.AssertAppError(t, err, "ACCOUNT_LOCKED")
	})

	t.Run("success_resets_failure_count", func(t *testing.T) {
		_, err := svc.CreateUser("frank@example.com", "correct-horse", "", "", "")
		testutil.AssertNoError(t, err)

		for i := 0; i < 4; i++ {
			svc.AttemptLogin("frank@example.com", "wrong")
		}
		_, err = svc.AttemptLogin("frank@example.com", "correct-horse")
		testutil.AssertNoError(t, err)

		// The counter reset means four more failures do not lock.
		for i := 0; i < 4; i++ {
			svc.AttemptLogin("frank@example.com", "wrong")
		}
		_, err = svc.AttemptLogin("frank@example.com", "correct-horse")
		testutil.AssertNoError(t, err)
	})
}

func TestUpdateMode(t *testing.T) {
	svc, teardown := newTestUserService(t)
	defer teardown()

	user, err := svc.CreateUser("grace@example.com", "s3cret-pass", "", "", models.UserModeBasic)
	testutil.AssertNoError(t, err)

	updated, err := svc.UpdateMode(user.ID, models.UserModeAdvanced)
	testutil.AssertNoError(t, err)
	if updated.Mode != models.UserModeAdvanced {
		t.Errorf("mode = %s, want advanced", updated.Mode)
	}

	fetched, err := svc.GetUserByID(user.ID)
	testutil.AssertNoError(t, err)
	if fetched.Mode != models.UserModeAdvanced {
		t.Error("mode change should persist")
	}

	_, err = svc.UpdateMode("00000000-0000-0000-0000-000000000000", models.UserModeBasic)
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}

func TestRefreshTokenHash(t *testing.T) {
	svc, teardown := newTestUserService(t)
	defer teardown()

	user, err := svc.CreateUser("heidi@example.com", "s3cret-pass", "", "", "")
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.StoreRefreshTokenHash(user.ID, "abc123hash"))

	hash, err := svc.GetRefreshTokenHash(user.ID)
	testutil.AssertNoError(t, err)
	if hash != "abc123hash" {
		t.Errorf("hash = %q, want abc123hash", hash)
	}

	_, err = svc.GetRefreshTokenHash("00000000-0000-0000-0000-000000000000")
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}
