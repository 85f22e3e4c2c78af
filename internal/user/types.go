package user

import "time"

// --- Domain Models ---

type NotificationPreferences struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
}

type DietaryPreferences struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"glutenFree"`
}

// Preferences is stored as a JSON document alongside the user.
type Preferences struct {
	Notifications NotificationPreferences `json:"notifications"`
	Dietary       DietaryPreferences      `json:"dietary"`
}

func DefaultPreferences() Preferences {
	return Preferences{Notifications: NotificationPreferences{Email: true, Push: true}}
}

type User struct {
	ID                    string
	Name                  string
	Email                 string
	PasswordHash          string
	IsVerified            bool
	VerificationCode      string
	VerificationExpiresAt time.Time
	GoogleID              string
	PhotoURL              string
	Bio                   string
	Location              string
	PhoneNumber           string
	IsAdmin               bool
	Preferences           Preferences
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// PendingSignup is a registration waiting for its emailed OTP.
type PendingSignup struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	OTP          string    `json:"otp"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// --- UseCase Inputs ---

type SendVerificationOTPInput struct {
	Name     string
	Email    string
	Password string
}

type VerifySignupOTPInput struct {
	TempUserID string
	OTP        string
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type GoogleInput struct {
	Name     string
	Email    string
	GoogleID string
	PhotoURL string
}

// --- UseCase Outputs ---

type SendVerificationOTPOutput struct {
	TempUserID string
}

type AuthOutput struct {
	Token string
	User  User
}

type GoogleSignupOutput struct {
	User    User
	Created bool
}
