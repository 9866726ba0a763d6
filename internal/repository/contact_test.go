// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/arlott/portfolio-api/internal/repository"
	"github.com/arlott/portfolio-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContact(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	id, err := repo.CreateContact(ctx, "Ada", "ada@example.com", "Hello there")

	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestCreateContact_MissingField(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	for _, tc := range []struct{ name, email, message string }{
		{"", "ada@example.com", "hi"},
		{"Ada", "", "hi"},
		{"Ada", "ada@example.com", ""},
	} {
		_, err := repo.CreateContact(ctx, tc.name, tc.email, tc.message)
		assert.ErrorIs(t, err, repository.ErrMissingField)
	}
}

func TestCreateContact_TruncatesMessage(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	_, err := repo.CreateContact(ctx, "Ada", "ada@example.com", strings.Repeat("m", 5000))
	require.NoError(t, err)

	rows, err := repo.ListContacts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Message, 2000)
}

func TestListContacts_NewestFirst(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	for i := range 5 {
		_, err := repo.CreateContact(ctx, fmt.Sprintf("user-%d", i), "u@example.com", "msg")
		require.NoError(t, err)
	}

	rows, err := repo.ListContacts(ctx, 10)

	require.NoError(t, err)
	require.Len(t, rows, 5)
	for i := 1; i < len(rows); i++ {
		assert.Greater(t, rows[i-1].ID, rows[i].ID)
	}
	assert.Equal(t, "user-4", rows[0].Name)
}

func TestListContacts_CapsLimit(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	for i := range 250 {
		_, err := repo.CreateContact(ctx, fmt.Sprintf("user-%d", i), "u@example.com", "msg")
		require.NoError(t, err)
	}

	rows, err := repo.ListContacts(ctx, 10000)

	require.NoError(t, err)
	assert.Len(t, rows, 200)
}

func TestListContacts_DefaultLimit(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	for i := range 60 {
		_, err := repo.CreateContact(ctx, fmt.Sprintf("user-%d", i), "u@example.com", "msg")
		require.NoError(t, err)
	}

	rows, err := repo.ListContacts(ctx, 0)

	require.NoError(t, err)
	assert.Len(t, rows, 50)
}
