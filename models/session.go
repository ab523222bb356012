package models

// Page identifies which screen a session is currently on.
type Page string

const (
	PageDirectory Page = "directory"
	PageProfile   Page = "profile"
	PageBooking   Page = "booking"
	PageAdmin     Page = "admin"
)

// Session holds the per-user navigation state. One value per browser
// session, never shared across sessions.
type Session struct {
	ID             string  `json:"id"`
	Page           Page    `json:"page"`
	SelectedDoctor *Doctor `json:"selected_doctor,omitempty"`
	Booking        bool    `json:"booking"`
	AdminLoggedIn  bool    `json:"admin_logged_in"`

	// One-shot messages shown on the next render and then cleared.
	Flash      string `json:"flash,omitempty"`
	FlashError string `json:"flash_error,omitempty"`
}

func NewSession(id string) *Session {
	return &Session{ID: id, Page: PageDirectory}
}

// SelectDoctor moves directory -> profile, keeping a value copy of the
// chosen doctor.
func (s *Session) SelectDoctor(d Doctor) {
	s.SelectedDoctor = &d
	s.Page = PageProfile
	s.Booking = false
}

// GotoDirectory returns to the directory from any page. Leaving for the
// directory always drops the selection and any booking in progress.
func (s *Session) GotoDirectory() {
	s.Page = PageDirectory
	s.SelectedDoctor = nil
	s.Booking = false
}

// GotoAdmin jumps to the admin page from any page. The login sub-mode
// inside the admin view handles gating, not this transition.
func (s *Session) GotoAdmin() {
	s.Page = PageAdmin
	s.SelectedDoctor = nil
	s.Booking = false
}

// StartBooking moves profile -> booking for the selected doctor.
func (s *Session) StartBooking() {
	s.Booking = true
	s.Page = PageBooking
}

// CancelBooking moves booking -> profile without persisting anything.
func (s *Session) CancelBooking() {
	s.Booking = false
	s.Page = PageProfile
}

// CompleteBooking moves booking -> directory after a successful submit.
func (s *Session) CompleteBooking() {
	s.GotoDirectory()
}

func (s *Session) LoginAdmin() {
	s.AdminLoggedIn = true
	s.Page = PageAdmin
}

// LogoutAdmin clears the login flag and returns to the directory.
func (s *Session) LogoutAdmin() {
	s.AdminLoggedIn = false
	s.GotoDirectory()
}

// TakeFlash returns the pending one-shot messages and clears them.
func (s *Session) TakeFlash() (msg, errMsg string) {
	msg, errMsg = s.Flash, s.FlashError
	s.Flash, s.FlashError = "", ""
	return msg, errMsg
}
