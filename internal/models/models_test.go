package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGameUpdate(t *testing.T) {
	assert.True(t, GameUpdate{}.IsEmpty())

	zero := 0
	name := "Duck Hunt"
	upd := GameUpdate{Name: &name, PreviousOwners: &zero}
	assert.False(t, upd.IsEmpty())

	game := Game{Name: "Duck Tales", System: "NES", PreviousOwners: 4, OwnerID: "owner"}
	upd.Apply(&game)

	assert.Equal(t, "Duck Hunt", game.Name)
	assert.Equal(t, 0, game.PreviousOwners, "a present zero value is applied")
	assert.Equal(t, "NES", game.System)
	assert.Equal(t, "owner", game.OwnerID)

	assert.Equal(t, map[string]any{"name": "Duck Hunt", "previous_owners": 0}, upd.Columns())
}

func TestUserUpdate(t *testing.T) {
	assert.True(t, UserUpdate{}.IsEmpty())

	address := "7 Joystick Ln"
	upd := UserUpdate{Address: &address}

	user := User{Name: "Ada", Address: "old"}
	upd.Apply(&user)

	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "7 Joystick Ln", user.Address)
	assert.Equal(t, map[string]any{"address": "7 Joystick Ln"}, upd.Columns())
}

func TestValidID(t *testing.T) {
	id := uuid.NewString()

	assert.True(t, ValidID(id))
	assert.False(t, ValidID(""))
	assert.False(t, ValidID("123"))
	assert.False(t, ValidID("{"+id+"}"))
	assert.False(t, ValidID("urn:uuid:"+id))
}

func TestBeforeCreate_KeepsExistingID(t *testing.T) {
	game := Game{ID: "preset"}
	assert.NoError(t, game.BeforeCreate(nil))
	assert.Equal(t, "preset", game.ID)

	var user User
	assert.NoError(t, user.BeforeCreate(nil))
	assert.True(t, ValidID(user.ID))
}
