// ABOUTME: Tests for contact MCP tool handlers
// ABOUTME: Exercises validation, search, and update merge semantics
package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trellis-crm/trellis/recordstore"
	"github.com/trellis-crm/trellis/services"
)

func newContactHandlers(store *recordstore.FakeStore) *ContactHandlers {
	return NewContactHandlers(services.NewContactService(store, zap.NewNop()))
}

func TestAddContact(t *testing.T) {
	store := recordstore.NewFakeStore()
	h := newContactHandlers(store)

	_, out, err := h.AddContact(context.Background(), nil, AddContactInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "Jane", out.FirstName)
	assert.Equal(t, "Lead", out.Status, "status should default")
	assert.Equal(t, 1, store.Count("contact_c"))
}

func TestAddContactMissingName(t *testing.T) {
	h := newContactHandlers(recordstore.NewFakeStore())

	_, _, err := h.AddContact(context.Background(), nil, AddContactInput{FirstName: "Jane"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "last_name_c")
}

func TestAddContactStoreRejection(t *testing.T) {
	store := recordstore.NewFakeStore()
	store.RejectWrites = true
	h := newContactHandlers(store)

	_, _, err := h.AddContact(context.Background(), nil, AddContactInput{
		FirstName: "Jane",
		LastName:  "Doe",
	})
	assert.Error(t, err)
}

func TestFindContacts(t *testing.T) {
	store := recordstore.NewFakeStore()
	store.Seed("contact_c", recordstore.Record{
		"first_name_c": "Jane", "last_name_c": "Doe", "email_c": "jane@acme.com",
	})
	store.Seed("contact_c", recordstore.Record{
		"first_name_c": "Bob", "last_name_c": "Smith", "email_c": "bob@other.com",
	})
	h := newContactHandlers(store)

	_, out, err := h.FindContacts(context.Background(), nil, FindContactsInput{Query: "jane"})
	require.NoError(t, err)
	require.Len(t, out.Contacts, 1)
	assert.Equal(t, "Jane", out.Contacts[0].FirstName)
}

func TestFindContactsLimit(t *testing.T) {
	store := recordstore.NewFakeStore()
	for i := 0; i < 5; i++ {
		store.Seed("contact_c", recordstore.Record{
			"first_name_c": "A", "last_name_c": "B",
		})
	}
	h := newContactHandlers(store)

	_, out, err := h.FindContacts(context.Background(), nil, FindContactsInput{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, out.Contacts, 3)
}

func TestUpdateContactKeepsUnsetFields(t *testing.T) {
	store := recordstore.NewFakeStore()
	seeded := store.Seed("contact_c", recordstore.Record{
		"first_name_c": "Jane", "last_name_c": "Doe",
		"email_c": "old@example.com", "status_c": "Prospect",
	})
	id := seeded["Id"].(int)
	h := newContactHandlers(store)

	_, out, err := h.UpdateContact(context.Background(), nil, UpdateContactInput{
		ID:    id,
		Email: "new@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", out.Email)
	assert.Equal(t, "Jane", out.FirstName)
	assert.Equal(t, "Prospect", out.Status)
}

func TestUpdateContactNotFound(t *testing.T) {
	h := newContactHandlers(recordstore.NewFakeStore())

	_, _, err := h.UpdateContact(context.Background(), nil, UpdateContactInput{ID: 99})
	assert.Error(t, err)
}

func TestDeleteContact(t *testing.T) {
	store := recordstore.NewFakeStore()
	seeded := store.Seed("contact_c", recordstore.Record{
		"first_name_c": "Jane", "last_name_c": "Doe",
	})
	id := seeded["Id"].(int)
	h := newContactHandlers(store)

	_, out, err := h.DeleteContact(context.Background(), nil, DeleteContactInput{ID: id})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, 0, store.Count("contact_c"))

	_, _, err = h.DeleteContact(context.Background(), nil, DeleteContactInput{ID: id})
	assert.Error(t, err, "second delete has nothing to remove")
}
