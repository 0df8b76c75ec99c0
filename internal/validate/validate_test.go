package validate

import (
	"testing"

	"github.com/dmitrijs2005/mhpportal/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestStruct_RequiredFields(t *testing.T) {
	v := New()

	require.NoError(t, v.Struct(models.NewUser{Email: "a@b.c", Password: "x"}))

	err := v.Struct(models.NewUser{FullName: "Only Name"})
	require.ErrorIs(t, err, ErrInvalid)
	require.Equal(t, "email is required; password is required", Message(err))

	err = v.Struct(models.Credentials{Email: "a@b.c"})
	require.ErrorIs(t, err, ErrInvalid)
	require.Equal(t, "password is required", Message(err))
}

func TestStruct_NonStruct_ReturnsRawError(t *testing.T) {
	err := New().Struct("not a struct")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalid)
}
