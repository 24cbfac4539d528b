package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunes/internal/domain/entity"
	domainerrors "tunes/internal/domain/errors"
	"tunes/internal/domain/repository"
)

var (
	artistColumns = []string{"id", "name", "photo", "stream", "created_at", "updated_at"}
	musicColumns  = []string{"id", "name", "genre", "album", "author_id", "created_at", "updated_at"}
)

func TestArtistRepository_FindAllOrderedByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArtistRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "artists" ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows(artistColumns).
			AddRow(2, "Alceu", "a.png", 10, now, now).
			AddRow(1, "Zeca", "z.png", 0, now, now))

	artists, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, artists, 2)
	assert.Equal(t, "Alceu", artists[0].Name)
	assert.Equal(t, 10, artists[0].Stream)
}

func TestArtistRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArtistRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "artists" WHERE "artists"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows(artistColumns))

	_, err := repo.FindByID(context.Background(), 5)
	assert.ErrorIs(t, err, repository.ErrArtistNotFound)
}

func TestArtistRepository_CreateRejectsNegativeStream(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArtistRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "artists"`)).
		WillReturnError(&pgconn.PgError{Code: "23514", Message: "violates check constraint"})

	err := repo.Create(context.Background(), &entity.Artist{Name: "X", Photo: "x.png", Stream: -1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestArtistRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArtistRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "artists" WHERE "artists"."id" = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 5), repository.ErrArtistNotFound)
}

func TestMusicRepository_FindByAuthor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMusicRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "musics" WHERE author_id = $1 ORDER BY name`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(musicColumns).
			AddRow(1, "Asa Branca", "baiao", "Best of", 7, now, now))

	musics, err := repo.FindByAuthor(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, musics, 1)
	assert.Equal(t, uint(7), musics[0].AuthorID)
}

func TestMusicRepository_CreateWithUnknownAuthor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMusicRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "musics"`)).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})

	err := repo.Create(context.Background(), &entity.Music{Name: "N", Genre: "G", Album: "A", AuthorID: 99})
	assert.ErrorIs(t, err, domainerrors.ErrArtistNotFound)
}

func TestMusicRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMusicRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "musics" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.Music{ID: 1, Name: "N", Genre: "G", Album: "A", AuthorID: 2})
	assert.ErrorIs(t, err, repository.ErrMusicNotFound)
}

func TestListeningRepository_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListeningRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "user_musics" WHERE user_id = $1 AND music_id = $2`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := repo.Exists(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestListeningRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListeningRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "user_musics"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &entity.Listening{UserID: 1, MusicID: 2})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyListened)
}

func TestListeningRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListeningRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "user_musics" WHERE user_id = $1 AND music_id = $2`)).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 1, 2), repository.ErrListeningNotFound)
}

func TestListeningRepository_MusicsByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListeningRepository(db)
	now := time.Now()

	mock.ExpectQuery(`JOIN user_musics ON user_musics\.music_id = musics\.id WHERE user_musics\.user_id = \$1 ORDER BY user_musics\.listened_at DESC`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(musicColumns).
			AddRow(3, "Song", "pop", "Album", 9, now, now))

	musics, err := repo.MusicsByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, musics, 1)
	assert.Equal(t, uint(3), musics[0].ID)
}

func TestListeningRepository_UsersByMusic(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListeningRepository(db)
	now := time.Now()

	mock.ExpectQuery(`JOIN user_musics ON user_musics\.user_id = users\.id WHERE user_musics\.music_id = \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "Ana", "ana@example.com", nil, "h", "user", now, now))

	users, err := repo.UsersByMusic(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Ana", users[0].Name)
}
