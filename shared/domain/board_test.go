package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	member := &Member{Id: 7, Nickname: "walker"}

	testCases := []struct {
		name        string
		member      *Member
		title       string
		category    Category
		imageUrl    string
		expectError bool
	}{
		{name: "valid board", member: member, title: "Han river picnic", category: CategoryTravel, imageUrl: "/uploads/a.png"},
		{name: "nil member", member: nil, title: "t", category: CategoryFree, imageUrl: "/uploads/a.png", expectError: true},
		{name: "empty title", member: member, title: "", category: CategoryFree, imageUrl: "/uploads/a.png", expectError: true},
		{name: "blank title", member: member, title: "  \t", category: CategoryFree, imageUrl: "/uploads/a.png", expectError: true},
		{name: "unknown category", member: member, title: "t", category: "SPORTS", imageUrl: "/uploads/a.png", expectError: true},
		{name: "empty image url", member: member, title: "t", category: CategoryFree, imageUrl: "", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			board, err := NewBoard(tc.member, tc.title, "content", tc.category, tc.imageUrl)
			if tc.expectError {
				require.ErrorIs(t, err, ErrInvalidBoard)
				assert.Nil(t, board)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.member.Id, board.Member.Id)
			assert.Equal(t, tc.title, board.Title)
			assert.Equal(t, "content", board.Content)
			assert.Equal(t, tc.category, board.Category)
			assert.Equal(t, tc.imageUrl, board.ImageUrl)
			assert.Equal(t, BoardActive, board.Status)
			assert.Nil(t, board.DeletedAt)
			assert.Zero(t, board.Id, "id is assigned by storage")
		})
	}
}

func TestBoardUpdate(t *testing.T) {
	original := &Member{Id: 1}
	board, err := NewBoard(original, "old title", "old content", CategoryFree, "/uploads/old.png")
	require.NoError(t, err)
	board.Id = 42

	t.Run("replaces every field", func(t *testing.T) {
		b := *board
		next := &Member{Id: 2}
		require.NoError(t, b.Update(next, "new title", "", CategoryFood, "/uploads/defaultImage.png"))

		assert.Equal(t, int64(42), b.Id, "identity is kept")
		assert.Equal(t, next.Id, b.Member.Id)
		assert.Equal(t, "new title", b.Title)
		assert.Equal(t, "", b.Content, "empty content overwrites, no merge")
		assert.Equal(t, CategoryFood, b.Category)
		assert.Equal(t, "/uploads/defaultImage.png", b.ImageUrl)
	})

	t.Run("invalid update leaves board untouched", func(t *testing.T) {
		b := *board
		err := b.Update(&Member{Id: 2}, " ", "new content", CategoryFood, "/uploads/new.png")
		require.ErrorIs(t, err, ErrInvalidBoard)
		assert.Equal(t, *board, b)
	})
}

func TestRecordDeletion(t *testing.T) {
	board, err := NewBoard(&Member{Id: 1}, "title", "content", CategoryQnA, "/uploads/a.png")
	require.NoError(t, err)
	assert.False(t, board.IsDeleted())

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	board.RecordDeletion(at)

	assert.True(t, board.IsDeleted())
	assert.Equal(t, BoardDeleted, board.Status)
	require.NotNil(t, board.DeletedAt)
	assert.Equal(t, at, *board.DeletedAt)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" travel ")
	require.NoError(t, err)
	assert.Equal(t, CategoryTravel, c)

	_, err = ParseCategory("weather")
	assert.ErrorIs(t, err, ErrInvalidBoard)
}

func TestPageRequest(t *testing.T) {
	p := PageRequest{Page: 3, Size: 10}
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 10, p.Limit())
	assert.Equal(t, 0, PageRequest{Page: 0, Size: 10}.Offset(), "page below 1 is treated as the first page")

	assert.Equal(t, 0, p.TotalPages(0))
	assert.Equal(t, 1, p.TotalPages(10))
	assert.Equal(t, 2, p.TotalPages(11))
}

func TestPendingFileEmpty(t *testing.T) {
	var nilFile *PendingFile
	assert.True(t, nilFile.Empty())
	assert.True(t, (&PendingFile{Filename: "a.png"}).Empty())
}

func TestPendingFileExtension(t *testing.T) {
	testCases := []struct {
		filename string
		expected string
	}{
		{filename: "photo.PNG", expected: ".png"},
		{filename: "archive.tar.gz", expected: ".gz"},
		{filename: "noext", expected: ""},
		{filename: "evil.jp/g", expected: ""},
		{filename: "weird.p n g", expected: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.filename, func(t *testing.T) {
			assert.Equal(t, tc.expected, (&PendingFile{Filename: tc.filename}).Extension())
		})
	}
	var nilFile *PendingFile
	assert.Equal(t, "", nilFile.Extension())
}

func TestBoardString(t *testing.T) {
	b := &Board{Id: 3, Member: Member{Id: 9}, Title: "t", Category: CategoryFree, ImageUrl: "/u.png"}
	assert.Contains(t, b.String(), "id:3")
	assert.Contains(t, b.String(), "status:ACTIVE")
	assert.Contains(t, b.String(), "deleted:nil")

	b.RecordDeletion(time.Now())
	assert.Contains(t, b.String(), "status:DELETED")
	assert.NotContains(t, b.String(), "deleted:nil")
}
