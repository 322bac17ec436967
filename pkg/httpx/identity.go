package httpx

import "github.com/gin-gonic/gin"

const (
	ctxUserID  = "auth.user_id"
	ctxEmail   = "auth.email"
	ctxGuestID = "auth.guest_id"
)

// SetUser marks the request as signed in.
func SetUser(c *gin.Context, userID, email string) {
	c.Set(ctxUserID, userID)
	c.Set(ctxEmail, email)
}

func SetGuest(c *gin.Context, guestID string) {
	c.Set(ctxGuestID, guestID)
}

// UserID is empty for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func UserEmail(c *gin.Context) string {
	return c.GetString(ctxEmail)
}

func GuestID(c *gin.Context) string {
	return c.GetString(ctxGuestID)
}

// OwnerID keys carts and wishlists: the user id when signed in, else the
// guest id.
func OwnerID(c *gin.Context) string {
	if id := UserID(c); id != "" {
		return id
	}
	return GuestID(c)
}
