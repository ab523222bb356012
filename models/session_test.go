package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testDoctor() Doctor {
	return Doctor{ID: "d1", Name: "Anita Sharma", Specialization: "Cardiology"}
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession("abc")
	assert.Equal(t, PageDirectory, s.Page)
	assert.Nil(t, s.SelectedDoctor)
	assert.False(t, s.Booking)
	assert.False(t, s.AdminLoggedIn)
}

func TestSelectDoctor(t *testing.T) {
	s := NewSession("abc")
	s.SelectDoctor(testDoctor())
	assert.Equal(t, PageProfile, s.Page)
	assert.Equal(t, "Anita Sharma", s.SelectedDoctor.Name)
}

func TestBookingFlow(t *testing.T) {
	s := NewSession("abc")
	s.SelectDoctor(testDoctor())

	s.StartBooking()
	assert.Equal(t, PageBooking, s.Page)
	assert.True(t, s.Booking)
	assert.NotNil(t, s.SelectedDoctor)

	s.CancelBooking()
	assert.Equal(t, PageProfile, s.Page)
	assert.False(t, s.Booking)
	assert.NotNil(t, s.SelectedDoctor)

	s.StartBooking()
	s.CompleteBooking()
	assert.Equal(t, PageDirectory, s.Page)
	assert.False(t, s.Booking)
	assert.Nil(t, s.SelectedDoctor)
}

func TestDirectoryAndAdminClearSelection(t *testing.T) {
	s := NewSession("abc")
	s.SelectDoctor(testDoctor())
	s.GotoDirectory()
	assert.Nil(t, s.SelectedDoctor)

	s.SelectDoctor(testDoctor())
	s.GotoAdmin()
	assert.Equal(t, PageAdmin, s.Page)
	assert.Nil(t, s.SelectedDoctor)
}

func TestAdminLoginLogout(t *testing.T) {
	s := NewSession("abc")
	s.GotoAdmin()
	s.LoginAdmin()
	assert.True(t, s.AdminLoggedIn)
	assert.Equal(t, PageAdmin, s.Page)

	s.LogoutAdmin()
	assert.False(t, s.AdminLoggedIn)
	assert.Equal(t, PageDirectory, s.Page)
}

// The stored Booking flag must always agree with Page == booking, whatever
// sequence of transitions ran before.
func TestBookingFlagStaysConsistent(t *testing.T) {
	s := NewSession("abc")
	steps := []func(){
		func() { s.SelectDoctor(testDoctor()) },
		func() { s.StartBooking() },
		func() { s.GotoAdmin() },
		func() { s.GotoDirectory() },
		func() { s.SelectDoctor(testDoctor()) },
		func() { s.StartBooking() },
		func() { s.CancelBooking() },
		func() { s.StartBooking() },
		// Picking a doctor mid-booking (stale directory tab) must drop
		// the booking flag along with the page change.
		func() { s.SelectDoctor(testDoctor()) },
		func() { s.StartBooking() },
		func() { s.CompleteBooking() },
	}
	for i, step := range steps {
		step()
		assert.Equal(t, s.Page == PageBooking, s.Booking, "after step %d", i)
	}
}

func TestTakeFlash(t *testing.T) {
	s := NewSession("abc")
	s.Flash = "saved"
	s.FlashError = "oops"

	msg, errMsg := s.TakeFlash()
	assert.Equal(t, "saved", msg)
	assert.Equal(t, "oops", errMsg)

	msg, errMsg = s.TakeFlash()
	assert.Empty(t, msg)
	assert.Empty(t, errMsg)
}
