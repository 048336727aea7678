package initdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractUser(t *testing.T) {
	fields, err := Parse("user=%7B%22id%22%3A42%2C%22first_name%22%3A%22A%22%7D&hash=ff")
	require.NoError(t, err)

	user, err := ExtractUser(fields)
	require.NoError(t, err)
	assert.Equal(t, User{ID: 42, FirstName: "A"}, user)
}

func TestExtractUserFullRecord(t *testing.T) {
	fields := FieldMap{
		FieldUser: `{"id":279058397,"first_name":"Vladislav","last_name":"Kibenko","username":"vdkfrost","language_code":"ru","is_premium":true,"photo_url":"https://t.me/i/userpic/320/abc.jpg","allows_write_to_pm":true}`,
	}
	user, err := ExtractUser(fields)
	require.NoError(t, err)
	assert.Equal(t, int64(279058397), user.ID)
	assert.Equal(t, "Vladislav", user.FirstName)
	assert.Equal(t, "Kibenko", user.LastName)
	assert.Equal(t, "vdkfrost", user.Username)
	assert.Equal(t, "ru", user.LanguageCode)
	assert.Equal(t, "https://t.me/i/userpic/320/abc.jpg", user.PhotoURL)
	assert.True(t, user.IsPremium)
}

func TestExtractUserMissingField(t *testing.T) {
	_, err := ExtractUser(FieldMap{"hash": "ff"})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestExtractUserInvalidJSON(t *testing.T) {
	_, err := ExtractUser(FieldMap{FieldUser: "{not json"})
	assert.ErrorIs(t, err, ErrInvalidUserData)
}

func TestExtractUserMissingID(t *testing.T) {
	_, err := ExtractUser(FieldMap{FieldUser: `{"first_name":"A"}`})
	assert.ErrorIs(t, err, ErrInvalidUserData)

	_, err = ExtractUser(FieldMap{FieldUser: `{"id":"42"}`})
	assert.ErrorIs(t, err, ErrInvalidUserData)
}

func TestExtractInitData(t *testing.T) {
	fields := FieldMap{
		FieldQueryID:  "AAA",
		FieldUser:     `{"id":7,"first_name":"B"}`,
		FieldAuthDate: "1700000000",
		FieldHash:     "cafe",
	}
	data, err := ExtractInitData(fields)
	require.NoError(t, err)
	assert.Equal(t, "AAA", data.QueryID)
	assert.Equal(t, int64(7), data.User.ID)
	assert.Equal(t, "1700000000", data.AuthDate)
	assert.Equal(t, "cafe", data.Hash)
}

func TestExtractInitDataOptionalQueryID(t *testing.T) {
	fields := FieldMap{
		FieldUser:     `{"id":7,"first_name":"B"}`,
		FieldAuthDate: "1700000000",
		FieldHash:     "cafe",
	}
	data, err := ExtractInitData(fields)
	require.NoError(t, err)
	assert.Empty(t, data.QueryID)
}

func TestExtractInitDataMissingRequired(t *testing.T) {
	_, err := ExtractInitData(FieldMap{FieldUser: `{"id":7}`, FieldHash: "cafe"})
	require.ErrorIs(t, err, ErrMissingField)
	assert.ErrorContains(t, err, "auth_date")

	_, err = ExtractInitData(FieldMap{FieldUser: `{"id":7}`, FieldAuthDate: "1"})
	require.ErrorIs(t, err, ErrMissingField)
	assert.ErrorContains(t, err, "hash")
}

func TestAuthDateTimeInvalid(t *testing.T) {
	data := InitData{AuthDate: "not-a-number"}
	_, err := data.AuthDateTime()
	assert.Error(t, err)
}
