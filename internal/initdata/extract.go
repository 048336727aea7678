package initdata

import (
	"encoding/json"
	"fmt"
)

// ExtractUser decodes the JSON user record from a parsed field map.
// Unknown JSON keys are ignored; optional fields stay zero-valued. A
// payload whose user object lacks a numeric id is rejected, since an
// identity-free user record is useless to every caller.
func ExtractUser(fields FieldMap) (User, error) {
	rawUser, ok := fields[FieldUser]
	if !ok {
		return User{}, fmt.Errorf("%w: %s", ErrMissingField, FieldUser)
	}
	var user User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrInvalidUserData, err)
	}
	if user.ID == 0 {
		return User{}, fmt.Errorf("%w: user id is missing", ErrInvalidUserData)
	}
	return user, nil
}

// ExtractInitData assembles the full typed payload from a parsed field
// map. auth_date and hash are required; query_id is optional.
func ExtractInitData(fields FieldMap) (InitData, error) {
	for _, key := range []string{FieldAuthDate, FieldHash} {
		if _, ok := fields[key]; !ok {
			return InitData{}, fmt.Errorf("%w: %s", ErrMissingField, key)
		}
	}
	user, err := ExtractUser(fields)
	if err != nil {
		return InitData{}, err
	}
	return InitData{
		QueryID:  fields[FieldQueryID],
		User:     user,
		AuthDate: fields[FieldAuthDate],
		Hash:     fields[FieldHash],
	}, nil
}
