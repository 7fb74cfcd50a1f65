package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSlot(t *testing.T) {
	slot, ok := ParseSlot("m")
	assert.True(t, ok)
	assert.Equal(t, SlotMorning, *slot)

	slot, ok = ParseSlot("afternoon")
	assert.True(t, ok)
	assert.Equal(t, SlotAfternoon, *slot)

	slot, ok = ParseSlot("")
	assert.True(t, ok)
	assert.Nil(t, slot)

	_, ok = ParseSlot("evening")
	assert.False(t, ok)
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("teacher")
	assert.True(t, ok)
	assert.Equal(t, RoleTeacher, role)

	_, ok = ParseRole("admin")
	assert.False(t, ok)
}
