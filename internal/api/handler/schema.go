package handler

import (
	"time"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse is intentionally flat: the admin panel reads token and user
// fields from the top level of the login/register payload.
type authResponse struct {
	Token string `json:"token"`
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toAuthResponse(token string, u *domain.User) authResponse {
	return authResponse{
		Token: token,
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

type updateProfileRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type changePasswordRequest struct {
	OldPassword     string `json:"oldPassword"     validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

type userResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin employee user"`
}

// --- Items ---

type itemRequest struct {
	Name        string  `json:"name"        validate:"required"`
	SKU         string  `json:"sku"         validate:"required"`
	Category    string  `json:"category"    validate:"required"`
	Quantity    int     `json:"quantity"    validate:"required,gt=0"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Supplier    string  `json:"supplier"    validate:"required"`
	Description string  `json:"description" validate:"max=300"`
}

// --- Entities ---

type entityRequest struct {
	Type     string `json:"type"     validate:"required,oneof=Buyer Supplier"`
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Business string `json:"business" validate:"required"`
	Contact  string `json:"contact"  validate:"required"`
	Address  string `json:"address"  validate:"required"`
}

// --- Sales ---

// saleRequest mirrors the panel's deal form. SoldOn arrives as a date string
// from a date picker ("2006-01-02") or a full RFC 3339 timestamp.
type saleRequest struct {
	ItemID     string  `json:"itemName"   validate:"required"`
	Category   string  `json:"category"`
	BuyerID    string  `json:"soldTo"     validate:"required"`
	SupplierID string  `json:"supplier"   validate:"required"`
	SoldOn     string  `json:"soldOn"     validate:"required"`
	Price      float64 `json:"price"      validate:"required,gt=0"`
	AmountSold int     `json:"amountSold" validate:"required,gt=0"`
}

// parseSoldOn accepts both the date-picker format and RFC 3339.
func parseSoldOn(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}
