package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-book-api/internal/apperr"
	"contact-book-api/internal/domain"
)

var testFields = domain.ContactFields{
	Firstname: "John",
	Lastname:  "Doe",
	Phone:     "555-0101",
	Email:     "john@example.com",
	Address:   "1 Main St",
}

func TestContactCreateAndGet(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	created, err := svc.Create(context.Background(), "owner-1", testFields)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "owner-1", created.OwnerUserID)

	got, err := svc.Get(context.Background(), created.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "John", got.Firstname)
	assert.Equal(t, "john@example.com", got.Email)
}

func TestContactGetNotFound(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	_, err := svc.Get(context.Background(), "missing", "owner-1")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, http.StatusNotFound, ae.Code)
}

func TestContactOwnershipEnforced(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	created, err := svc.Create(context.Background(), "owner-1", testFields)
	require.NoError(t, err)

	// 存在但不是自己的：403 而不是 404
	checks := []func() error{
		func() error { _, e := svc.Get(context.Background(), created.ID, "owner-2"); return e },
		func() error { _, e := svc.Update(context.Background(), created.ID, testFields, "owner-2"); return e },
		func() error { return svc.Delete(context.Background(), created.ID, "owner-2") },
	}
	for _, check := range checks {
		var ae *apperr.Error
		require.ErrorAs(t, check(), &ae)
		assert.Equal(t, http.StatusForbidden, ae.Code)
	}

	// 没动过
	got, err := svc.Get(context.Background(), created.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestContactUpdatePreservesIdentity(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	created, err := svc.Create(context.Background(), "owner-1", testFields)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, domain.ContactFields{
		Firstname: "Jane",
		Lastname:  "Smith",
		Phone:     "555-0202",
		Email:     "jane@example.com",
		Address:   "2 Oak Ave",
	}, "owner-1")
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "owner-1", updated.OwnerUserID)
	assert.Equal(t, "Jane", updated.Firstname)

	got, err := svc.Get(context.Background(), created.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestContactDelete(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	created, err := svc.Create(context.Background(), "owner-1", testFields)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID, "owner-1"))

	_, err = svc.Get(context.Background(), created.ID, "owner-1")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, http.StatusNotFound, ae.Code)
}

func TestSearchBlankQueryReturnsOwnContacts(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	mine1, _ := svc.Create(context.Background(), "owner-1", domain.ContactFields{Firstname: "a"})
	mine2, _ := svc.Create(context.Background(), "owner-1", domain.ContactFields{Firstname: "b"})
	_, _ = svc.Create(context.Background(), "owner-2", domain.ContactFields{Firstname: "c"})

	page, err := svc.Search(context.Background(), "owner-1", SearchParams{}, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Content, 2)
	assert.Equal(t, mine1.ID, page.Content[0].ID)
	assert.Equal(t, mine2.ID, page.Content[1].ID)
}

func TestSearchByFirstname(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	_, _ = svc.Create(context.Background(), "owner-1", domain.ContactFields{Firstname: "test"})
	_, _ = svc.Create(context.Background(), "owner-1", domain.ContactFields{Firstname: "test"})
	_, _ = svc.Create(context.Background(), "owner-2", domain.ContactFields{Firstname: "test"})

	page, err := svc.Search(context.Background(), "owner-1", SearchParams{Firstname: "test"}, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalElements)

	page, err = svc.Search(context.Background(), "owner-1", SearchParams{Firstname: "test2"}, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.TotalElements)
	assert.Empty(t, page.Content)
}

func TestSearchPagination(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	for i := 0; i < 5; i++ {
		_, err := svc.Create(context.Background(), "owner-1", domain.ContactFields{Firstname: "x"})
		require.NoError(t, err)
	}

	page0, err := svc.Search(context.Background(), "owner-1", SearchParams{}, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page0.TotalElements)
	assert.Equal(t, 3, page0.TotalPages)
	assert.Len(t, page0.Content, 2)

	page2, err := svc.Search(context.Background(), "owner-1", SearchParams{}, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page2.Content, 1)

	page9, err := svc.Search(context.Background(), "owner-1", SearchParams{}, 9, 2)
	require.NoError(t, err)
	assert.Empty(t, page9.Content)
	assert.Equal(t, int64(5), page9.TotalElements)
}

func TestBuildSearchText(t *testing.T) {
	tests := []struct {
		name string
		in   SearchParams
		want string
	}{
		{"all blank", SearchParams{}, ""},
		{"whitespace only", SearchParams{Firstname: "   ", Phone: "\t"}, ""},
		{"single field", SearchParams{Lastname: "Doe"}, "Doe"},
		{"skips blanks", SearchParams{Firstname: "John", Phone: "555"}, "John 555"},
		{
			"email included",
			SearchParams{Firstname: "John", Lastname: "Doe", Address: "Main", Phone: "555", Email: "j@x.io"},
			"John Doe Main 555 j@x.io",
		},
		{"trims fields", SearchParams{Firstname: " John ", Lastname: " Doe "}, "John Doe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildSearchText(tt.in))
		})
	}
}
