package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/emrekoc/jobboard/backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))
	t.Cleanup(func() { Close(db) })
	return db
}

func newUser(username, password string) *models.User {
	return &models.User{
		Username: username,
		Password: password,
		UserType: "employer",
		Age:      30,
		Avatar:   models.DefaultAvatar,
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(newTestDB(t))

	require.NoError(t, users.CreateUser(ctx, newUser("carol", "pw")))
	err := users.CreateUser(ctx, newUser("carol", "other"))
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(newTestDB(t))

	email := "carol@example.com"
	first := newUser("carol", "pw")
	first.Email = &email
	require.NoError(t, users.CreateUser(ctx, first))

	second := newUser("carla", "pw")
	second.Email = &email
	err := users.CreateUser(ctx, second)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateUserWithoutEmailDoesNotCollide(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(newTestDB(t))

	require.NoError(t, users.CreateUser(ctx, newUser("alice", "pw")))
	require.NoError(t, users.CreateUser(ctx, newUser("bob", "pw")))
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(newTestDB(t))
	require.NoError(t, users.CreateUser(ctx, newUser("alice", "secret")))

	u, err := users.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "secret", u.Password)

	_, err = users.Authenticate(ctx, "alice", "secreT")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown identifier is indistinguishable from a wrong password
	_, err = users.Authenticate(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateByEmail(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(newTestDB(t))

	email := "alice@example.com"
	u := newUser("alice", "secret")
	u.Email = &email
	require.NoError(t, users.CreateUser(ctx, u))

	got, err := users.Authenticate(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

func TestUpdateProfileRenameConflict(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(newTestDB(t))
	require.NoError(t, users.CreateUser(ctx, newUser("alice", "pw")))
	require.NoError(t, users.CreateUser(ctx, newUser("bob", "pw")))

	_, err := users.UpdateProfile(ctx, "bob", "alice", "", 0)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUpdateProfileAvatar(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(newTestDB(t))
	require.NoError(t, users.CreateUser(ctx, newUser("alice", "pw")))

	u, err := users.UpdateProfile(ctx, "alice", "", "/uploads/new.png", 0)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/new.png", u.Avatar)
}

func TestJobListOrder(t *testing.T) {
	ctx := context.Background()
	jobs := NewJobStore(newTestDB(t))

	for i := 0; i < 5; i++ {
		require.NoError(t, jobs.Create(ctx, &models.Job{
			Owner: "alice", Title: "job", Phone: "555",
		}))
	}

	list, err := jobs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)
	for i := 1; i < len(list); i++ {
		assert.Greater(t, list[i-1].ID, list[i].ID)
	}
}

func TestJobUpdatePreservesImage(t *testing.T) {
	ctx := context.Background()
	jobs := NewJobStore(newTestDB(t))

	job := &models.Job{Owner: "alice", Title: "before", Phone: "555", Image: "/uploads/a.png"}
	require.NoError(t, jobs.Create(ctx, job))

	require.NoError(t, jobs.Update(ctx, job.ID, &models.JobRequest{
		Title: "after", Phone: "555",
	}))
	got, err := jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, "/uploads/a.png", got.Image)

	require.NoError(t, jobs.Update(ctx, job.ID, &models.JobRequest{
		Title: "after", Phone: "555", Image: "/uploads/b.png",
	}))
	got, err = jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/b.png", got.Image)
}

func TestJobUpdateMissingIDSucceeds(t *testing.T) {
	ctx := context.Background()
	jobs := NewJobStore(newTestDB(t))
	assert.NoError(t, jobs.Update(ctx, 999, &models.JobRequest{Title: "x", Phone: "y"}))
}

func TestJobDelete(t *testing.T) {
	ctx := context.Background()
	jobs := NewJobStore(newTestDB(t))

	job := &models.Job{Owner: "alice", Title: "job", Phone: "555"}
	require.NoError(t, jobs.Create(ctx, job))

	// wrong owner deletes nothing
	rows, err := jobs.Delete(ctx, job.ID, "mallory")
	require.NoError(t, err)
	assert.Zero(t, rows)
	_, err = jobs.GetByID(ctx, job.ID)
	assert.NoError(t, err)

	// matching owner deletes the row
	rows, err = jobs.Delete(ctx, job.ID, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)
	_, err = jobs.GetByID(ctx, job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobDeleteWithoutOwnerIsUnconditional(t *testing.T) {
	ctx := context.Background()
	jobs := NewJobStore(newTestDB(t))

	job := &models.Job{Owner: "alice", Title: "job", Phone: "555"}
	require.NoError(t, jobs.Create(ctx, job))

	rows, err := jobs.Delete(ctx, job.ID, "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)
}

func TestMessagesByJobOrder(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	msgs := NewMessageStore(db)

	for _, text := range []string{"first", "second", "third"} {
		require.NoError(t, msgs.Create(ctx, &models.Message{
			JobID: 1, Sender: "bob", Text: text, Receiver: "alice",
		}))
	}

	got, err := msgs.ListByJob(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "third", got[0].Text)
	assert.Equal(t, "first", got[2].Text)
}

func TestInboxJoinsJobTitle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	jobs := NewJobStore(db)
	msgs := NewMessageStore(db)

	job := &models.Job{Owner: "alice", Title: "barista wanted", Phone: "555"}
	require.NoError(t, jobs.Create(ctx, job))
	require.NoError(t, msgs.Create(ctx, &models.Message{
		JobID: job.ID, Sender: "bob", Text: "interested", Receiver: "alice",
	}))

	inbox, err := msgs.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	require.NotNil(t, inbox[0].JobTitle)
	assert.Equal(t, "barista wanted", *inbox[0].JobTitle)

	// sender sees the exchange too
	sent, err := msgs.ListByUser(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, sent, 1)

	// bystanders see nothing
	other, err := msgs.ListByUser(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestInboxDeletedJobLeavesNilTitle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	jobs := NewJobStore(db)
	msgs := NewMessageStore(db)

	job := &models.Job{Owner: "alice", Title: "gone soon", Phone: "555"}
	require.NoError(t, jobs.Create(ctx, job))
	require.NoError(t, msgs.Create(ctx, &models.Message{
		JobID: job.ID, Sender: "bob", Text: "hi", Receiver: "alice",
	}))

	_, err := jobs.Delete(ctx, job.ID, "")
	require.NoError(t, err)

	inbox, err := msgs.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Nil(t, inbox[0].JobTitle)
}
