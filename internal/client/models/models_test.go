package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ifti227i/RideShareX/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want ID
	}{
		{`"abc"`, "abc"},
		{`123456`, "123456"},
		{`null`, ""},
	}
	for _, tt := range tests {
		var id ID
		require.NoError(t, json.Unmarshal([]byte(tt.in), &id), tt.in)
		assert.Equal(t, tt.want, id)
	}

	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{}`), &id))
}

func TestNewID_Unique(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestUser_JSON(t *testing.T) {
	raw := `{"id":42,"username":"rahim","email":"r@example.com","createdAt":"2025-08-15T10:00:00Z"}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(raw), &u))

	want := User{
		ID:        "42",
		Username:  "rahim",
		Email:     "r@example.com",
		CreatedAt: time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, u); diff != "" {
		t.Fatalf("user mismatch (-want +got):\n%s", diff)
	}

	out, err := json.Marshal(User{ID: "1", Username: "a", Email: "b"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","username":"a","email":"b"}`, string(out))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("user@example.com"))
	assert.False(t, ValidEmail("user@example"))
	assert.False(t, ValidEmail("us er@example.com"))
	assert.False(t, ValidEmail("@example.com"))
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
}

func TestProfileUpdate_ApplyAndValidate(t *testing.T) {
	name := " Karim "
	bio := "hello"
	p := ProfileUpdate{Username: &name, Bio: &bio}

	require.NoError(t, p.Validate())
	got := p.Apply(User{ID: "1", Username: "old", Email: "e@x.io", Phone: "017"})
	assert.Equal(t, User{ID: "1", Username: "Karim", Email: "e@x.io", Phone: "017", Bio: "hello"}, got)

	short := "k"
	var ve *common.ValidationError
	err := ProfileUpdate{Username: &short}.Validate()
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, common.RuleMinLength, ve.Rule)

	bad := "nope"
	err = ProfileUpdate{Email: &bad}.Validate()
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)

	assert.True(t, ProfileUpdate{}.IsEmpty())
	assert.False(t, p.IsEmpty())
}

func TestSavedLocation_Prepare(t *testing.T) {
	l, err := SavedLocation{Name: " Home ", Address: "123 Home Street"}.Prepare()
	require.NoError(t, err)
	assert.Equal(t, "Home", l.Name)
	assert.Equal(t, DefaultLocationIcon, l.Icon)

	_, err = SavedLocation{Address: "x"}.Prepare()
	assertRule(t, err, "name", common.RuleRequired)

	_, err = SavedLocation{Name: "x"}.Prepare()
	assertRule(t, err, "address", common.RuleRequired)

	assert.Equal(t, ID("7"), l.WithID("7").ItemID())
}

func TestPaymentMethod_Prepare(t *testing.T) {
	p, err := PaymentMethod{Name: "bKash", Number: "****5738", Type: PaymentMobile}.Prepare()
	require.NoError(t, err)
	assert.Equal(t, NoExpiry, p.Expiry)

	p, err = PaymentMethod{Name: "Visa", Number: "4821"}.Prepare()
	require.NoError(t, err)
	assert.Equal(t, PaymentCard, p.Type)

	_, err = PaymentMethod{Type: "crypto", Name: "x", Number: "1"}.Prepare()
	assertRule(t, err, "type", common.RuleOneOf)

	_, err = PaymentMethod{Name: "x"}.Prepare()
	assertRule(t, err, "number", common.RuleRequired)
}

func TestRideRecord_Prepare(t *testing.T) {
	five := 5
	r, err := RideRecord{From: "Dhanmondi", To: "Airport", Date: "2025-08-15", Price: "৳350", Rating: &five}.Prepare()
	require.NoError(t, err)
	assert.Equal(t, 5, *r.Rating)

	_, err = RideRecord{From: "a", To: "b", Date: "d"}.Prepare()
	assertRule(t, err, "price", common.RuleRequired)

	six := 6
	_, err = RideRecord{From: "a", To: "b", Date: "d", Price: "1", Rating: &six}.Prepare()
	assertRule(t, err, "rating", common.RuleRange)
}

func assertRule(t *testing.T, err error, field, rule string) {
	t.Helper()
	require.True(t, errors.Is(err, common.ErrValidation), "want validation error, got %v", err)
	ve := common.AsValidationError(err)
	require.NotNil(t, ve)
	assert.Equal(t, field, ve.Field)
	assert.Equal(t, rule, ve.Rule)
}
