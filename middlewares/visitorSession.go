package middlewares

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Kariqs/bakebites/initializers"
	"github.com/Kariqs/bakebites/models"
	"github.com/Kariqs/bakebites/sessionstore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorKey   = "visitor"
	visitorIDKey = "visitor_id"
)

// Requests of one visitor are serialized so a cart is never mutated by two
// requests at once. Different visitors never wait on each other.
var locks = newVisitorLocks()

// VisitorSession loads the visitor's state before the handler runs and saves
// it afterwards. New visitors get a fresh, empty session.
func VisitorSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, err := initializers.CookieStore.Get(ctx.Request, initializers.SessionCookieName)
		if err != nil {
			log.Println("Discarding unreadable session cookie:", err)
		}

		id, _ := session.Values[visitorIDKey].(string)
		if id == "" {
			id = uuid.NewString()
			session.Values[visitorIDKey] = id
			if err := session.Save(ctx.Request, ctx.Writer); err != nil {
				log.Println("Failed to save session cookie:", err)
				ctx.AbortWithStatus(http.StatusInternalServerError)
				return
			}
		}

		unlock, err := locks.Acquire(ctx.Request.Context(), id)
		if err != nil {
			log.Println("Gave up waiting for visitor session:", err)
			ctx.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		defer unlock()

		visitor, err := initializers.Visitors.Load(ctx.Request.Context(), id)
		if errors.Is(err, sessionstore.ErrNotFound) {
			visitor = models.NewVisitorSession(id)
		} else if err != nil {
			log.Println("Failed to load visitor session:", err)
			ctx.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		if visitor.Steppers == nil {
			visitor.Steppers = models.Steppers{}
		}

		ctx.Set(visitorKey, visitor)
		ctx.Next()

		visitor.UpdatedAt = time.Now()
		if err := initializers.Visitors.Save(context.WithoutCancel(ctx.Request.Context()), visitor); err != nil {
			log.Println("Failed to save visitor session:", err)
		}
	}
}

// Visitor returns the session loaded by VisitorSession.
func Visitor(ctx *gin.Context) *models.VisitorSession {
	return ctx.MustGet(visitorKey).(*models.VisitorSession)
}
