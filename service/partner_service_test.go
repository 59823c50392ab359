package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/logger"
	"lumina/models"
)

func TestPartnerService_SignIn(t *testing.T) {
	// Arrange
	store, _ := newTestStore(t)
	ps := NewPartnerService(newStubAPI(), store, logger.Nop())
	ctx := context.Background()

	// Act
	portal, err := ps.SignIn(ctx, "vibesng")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Vibes NG", portal.Promoter.DisplayName)
	assert.Len(t, portal.Venues, 2)
	require.NotNil(t, portal.Stats)
	assert.Equal(t, 12400, portal.Stats.Followers)
	assert.True(t, store.PartnerSession())

	require.NoError(t, ps.SignOut(ctx))
	assert.False(t, store.PartnerSession())
}

func TestPartnerService_SignIn_UnknownHandle(t *testing.T) {
	store, _ := newTestStore(t)
	ps := NewPartnerService(newStubAPI(), store, logger.Nop())

	_, err := ps.SignIn(context.Background(), "ghost")

	assert.Error(t, err)
	assert.False(t, store.PartnerSession())
}

func TestPartnerService_Apply_Validates(t *testing.T) {
	store, _ := newTestStore(t)
	ps := NewPartnerService(newStubAPI(), store, logger.Nop())
	app := models.PartnerApplication{
		BusinessName: "Vault", ContactName: "Ife", Email: "ife@vault.ng", City: "Lagos", PartnerType: "venue",
	}

	res, err := ps.Apply(context.Background(), app)
	require.NoError(t, err)
	assert.Equal(t, "received", res.Status)

	app.Email = "not-an-email"
	_, err = ps.Apply(context.Background(), app)
	assert.Error(t, err)

	app.Email = "ife@vault.ng"
	app.PartnerType = "dj"
	_, err = ps.Apply(context.Background(), app)
	assert.Error(t, err)
}

func TestPartnerService_SaveLayout(t *testing.T) {
	store, _ := newTestStore(t)
	ps := NewPartnerService(newStubAPI(), store, logger.Nop())
	ctx := context.Background()
	layout := models.SeatingLayout{
		Name: "Main floor", Width: 12, Height: 8,
		Tables: []models.LayoutTable{{ID: "t1", Capacity: 6}, {ID: "t2", Capacity: 4}},
	}

	saved, err := ps.SaveLayout(ctx, "9001", layout)
	require.NoError(t, err)
	layouts, err := ps.Layouts(ctx, "9001")
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Len(t, layouts, 1)

	layout.Tables[1].ID = "t1"
	_, err = ps.SaveLayout(ctx, "9001", layout)
	assert.Error(t, err)

	layout.Tables = []models.LayoutTable{{ID: "t1", Capacity: 0}}
	_, err = ps.SaveLayout(ctx, "9001", layout)
	assert.Error(t, err)
}
