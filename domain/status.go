package domain

// AuthStatus tracks how far an account has progressed through signup.
type AuthStatus string

const (
	StatusNew          AuthStatus = "new"
	StatusCodeVerified AuthStatus = "code_verified"
	StatusPhotoStep    AuthStatus = "photo_step"
	StatusDone         AuthStatus = "done"
)

// statusTransitions is the closed set of legal status moves. Every edge is
// forward except the photo-step ones: uploading a profile photo moves a
// verified or completed account to StatusPhotoStep.
var statusTransitions = map[AuthStatus][]AuthStatus{
	StatusNew:          {StatusCodeVerified},
	StatusCodeVerified: {StatusDone, StatusPhotoStep},
	StatusDone:         {StatusPhotoStep},
	StatusPhotoStep:    {StatusPhotoStep},
}

// CanTransition reports whether moving from s to next is a legal transition.
func (s AuthStatus) CanTransition(next AuthStatus) bool {
	for _, t := range statusTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// CanLogin reports whether the account has completed enough of signup to be
// issued a login session.
func (s AuthStatus) CanLogin() bool {
	return s == StatusDone || s == StatusPhotoStep
}
